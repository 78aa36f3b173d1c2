package routines

import (
	"errors"
	"net/http"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	msgRoutineNotFound = "La rutina no existe."
	msgNotTemplate     = "Solo se pueden asignar plantillas."
	msgMissingAthlete  = "Falta el atleta."
)

type AssignRequest struct {
	AthleteID string `json:"athleteId"`
}

type AssignResponse struct {
	Routine *Routine `json:"routine"`
	Created bool     `json:"created"`
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
	r.HandleFunc("/routines", handler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/routines", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/routines/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/routines/{id}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-routine")
	r.HandleFunc("/routines/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	r.HandleFunc("/routines/{id}/duplicate", handler.HandleDuplicate).Methods("POST", "OPTIONS").Name("duplicate-routine")
	r.HandleFunc("/routines/{id}/assign", handler.HandleAssign).Methods("POST", "OPTIONS").Name("assign-routine")
	r.HandleFunc("/athletes/{id}/routines", handler.HandleListForAthlete).Methods("GET", "OPTIONS").Name("athlete-routines")
}

func writeError(w http.ResponseWriter, err error) {
	if msg, ok := pkg.ValidationMessage(err); ok {
		pkg.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	switch {
	case errors.Is(err, ErrRoutineNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgRoutineNotFound)
	case errors.Is(err, ErrNotTemplate):
		pkg.WriteError(w, http.StatusBadRequest, msgNotTemplate)
	default:
		users.WriteError(w, err)
	}
}

// HandleList answers coaches with their templates and athletes with their own copies.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	actor, ok := users.FromContext(ctx)
	if !ok {
		writeError(w, users.ErrUnauthenticated)
		return
	}

	var (
		list []Routine
		err  error
	)
	if actor.IsCoach() {
		list, err = handler.service.ListTemplates(ctx, actor)
	} else {
		list, err = handler.service.ListForAthlete(ctx, actor, actor.ID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if list == nil {
		list = []Routine{}
	}
	pkg.WriteJSONOK(w, list)
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.create")
	defer span.End()

	var routine Routine
	if !pkg.DecodeJSONBody(w, r, &routine) {
		return
	}

	actor, _ := users.FromContext(ctx)
	created, err := handler.service.Create(ctx, actor, routine)
	if err != nil {
		writeError(w, err)
		return
	}

	log.Debugf("routine %s created by %s", created.ID, actor.ID)
	pkg.WriteJSON(w, http.StatusCreated, created)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	routine, err := handler.service.Get(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, routine)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	var changes Routine
	if !pkg.DecodeJSONBody(w, r, &changes) {
		return
	}

	actor, _ := users.FromContext(ctx)
	updated, err := handler.service.Update(ctx, actor, mux.Vars(r)["id"], changes)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, updated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	actor, _ := users.FromContext(ctx)
	if err := handler.service.Delete(ctx, actor, id); err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, map[string]string{"deletedId": id})
}

func (handler *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.duplicate")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	dup, err := handler.service.Duplicate(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, dup)
}

func (handler *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.assign")
	defer span.End()

	var req AssignRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}
	if req.AthleteID == "" {
		pkg.WriteError(w, http.StatusBadRequest, msgMissingAthlete)
		return
	}

	actor, _ := users.FromContext(ctx)
	copied, created, err := handler.service.Assign(ctx, actor, mux.Vars(r)["id"], req.AthleteID)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, status, AssignResponse{Routine: copied, Created: created})
}

func (handler *Handler) HandleListForAthlete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.listForAthlete")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	list, err := handler.service.ListForAthlete(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if list == nil {
		list = []Routine{}
	}
	pkg.WriteJSONOK(w, list)
}
