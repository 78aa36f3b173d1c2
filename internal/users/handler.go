package users

import (
	"net/http"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CreateAthleteRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Profile  Profile `json:"profile"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/athletes", handler.HandleListAthletes).Methods("GET", "OPTIONS").Name("list-athletes")
	r.HandleFunc("/athletes", handler.HandleCreateAthlete).Methods("POST", "OPTIONS").Name("new-athlete")
	r.HandleFunc("/athletes/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-athlete")
	r.HandleFunc("/athletes/{id}/profile", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-athlete-profile")
	r.HandleFunc("/athletes/{id}", handler.HandleRemoveAthlete).Methods("DELETE", "OPTIONS").Name("remove-athlete")
}

func (handler *Handler) HandleListAthletes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.listAthletes")
	defer span.End()

	actor, _ := FromContext(ctx)
	athletes, err := handler.service.ListAthletes(ctx, actor)
	if err != nil {
		WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, athletes)
}

func (handler *Handler) HandleCreateAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.createAthlete")
	defer span.End()

	var req CreateAthleteRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	actor, _ := FromContext(ctx)
	athlete, err := handler.service.CreateAthlete(ctx, actor, req.Email, req.Name, req.Password, req.Profile)
	if err != nil {
		log.Debugf("create athlete failed: %s", err)
		WriteError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, athlete)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	actor, _ := FromContext(ctx)
	u, err := handler.service.Get(ctx, actor, id)
	if err != nil {
		WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, u)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updateProfile")
	defer span.End()

	var profile Profile
	if !pkg.DecodeJSONBody(w, r, &profile) {
		return
	}

	actor, _ := FromContext(ctx)
	updated, err := handler.service.UpdateProfile(ctx, actor, mux.Vars(r)["id"], profile)
	if err != nil {
		WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, updated)
}

func (handler *Handler) HandleRemoveAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.removeAthlete")
	defer span.End()

	id := mux.Vars(r)["id"]
	actor, _ := FromContext(ctx)
	if err := handler.service.RemoveAthlete(ctx, actor, id); err != nil {
		WriteError(w, err)
		return
	}

	log.Debugf("athlete %s removed by %s", id, actor.ID)
	pkg.WriteJSONOK(w, map[string]string{"deletedId": id})
}
