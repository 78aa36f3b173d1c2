package traininglogs

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	msgLogNotFound      = "El registro de entrenamiento no existe."
	msgLogNotInProgress = "El entrenamiento ya está terminado."
	msgRoutineNotFound  = "La rutina no existe."
	msgInvalidIndex     = "Índice de ejercicio o serie no válido."
)

type StartRequest struct {
	RoutineID string `json:"routineId"`
	DayIndex  int    `json:"dayIndex"`
	// Date is YYYY-MM-DD, today if empty.
	Date string `json:"date"`
}

type FinishRequest struct {
	Notes      string  `json:"notes"`
	SessionRPE float64 `json:"sessionRpe"`
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
	r.HandleFunc("/logs/start", handler.HandleStart).Methods("POST", "OPTIONS").Name("start-log")
	r.HandleFunc("/logs/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-log")
	r.HandleFunc("/logs/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-log")
	r.HandleFunc("/logs/{id}/finish", handler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-log")
	r.HandleFunc("/logs/{id}/exercises/{ex}/sets/{set}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/logs/{id}/exercises/{ex}/sets", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/athletes/{id}/logs/page/{page}/size/{size}", handler.HandleList).Methods("GET", "OPTIONS").Name("logs-page")
	r.HandleFunc("/coach/feed", handler.HandleCoachFeed).Methods("GET", "OPTIONS").Name("coach-feed")
}

func writeError(w http.ResponseWriter, err error) {
	if msg, ok := pkg.ValidationMessage(err); ok {
		pkg.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	switch {
	case errors.Is(err, ErrLogNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgLogNotFound)
	case errors.Is(err, ErrLogNotInProgress):
		pkg.WriteError(w, http.StatusConflict, msgLogNotInProgress)
	case errors.Is(err, routines.ErrRoutineNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgRoutineNotFound)
	default:
		users.WriteError(w, err)
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.start")
	defer span.End()

	var req StartRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	var date time.Time
	if req.Date != "" {
		d, err := pkg.ParseDate(req.Date)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
			return
		}
		date = d
	}

	actor, _ := users.FromContext(ctx)
	l, created, err := handler.service.Start(ctx, actor, req.RoutineID, req.DayIndex, date)
	if err != nil {
		writeError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	pkg.WriteJSON(w, status, l)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.get")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	l, err := handler.service.Get(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, l)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	actor, _ := users.FromContext(ctx)
	if err := handler.service.Delete(ctx, actor, id); err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, map[string]string{"deletedId": id})
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.finish")
	defer span.End()

	var req FinishRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	actor, _ := users.FromContext(ctx)
	l, err := handler.service.Finish(ctx, actor, mux.Vars(r)["id"], req.Notes, req.SessionRPE)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, l)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.updateSet")
	defer span.End()

	vars := mux.Vars(r)
	exIdx, err := strconv.Atoi(vars["ex"])
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidIndex)
		return
	}
	setIdx, err := strconv.Atoi(vars["set"])
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidIndex)
		return
	}

	var input SetInput
	if !pkg.DecodeJSONBody(w, r, &input) {
		return
	}

	actor, _ := users.FromContext(ctx)
	l, err := handler.service.UpdateSet(ctx, actor, vars["id"], exIdx, setIdx, input)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, l)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.addSet")
	defer span.End()

	vars := mux.Vars(r)
	exIdx, err := strconv.Atoi(vars["ex"])
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, msgInvalidIndex)
		return
	}

	actor, _ := users.FromContext(ctx)
	l, err := handler.service.AddSet(ctx, actor, vars["id"], exIdx)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, l)
}

// HandleList takes the optional from, to (YYYY-MM-DD) and status query params.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.list")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		log.Debugf("handle logs page, <page> param [%s]: %v", vars["page"], err)
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidPageParam)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		log.Debugf("handle logs page, <size> param [%s]: %v", vars["size"], err)
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidPageParam)
		return
	}

	filter := Filter{
		Page:   page,
		Size:   size,
		Status: Status(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := pkg.ParseDate(raw)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
			return
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := pkg.ParseDate(raw)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
			return
		}
		filter.To = &to
	}

	actor, _ := users.FromContext(ctx)
	result, err := handler.service.List(ctx, actor, vars["id"], filter)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, result)
}

func (handler *Handler) HandleCoachFeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.logs.coachFeed")
	defer span.End()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		l, err := strconv.Atoi(raw)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidPageParam)
			return
		}
		limit = l
	}

	actor, _ := users.FromContext(ctx)
	feed, err := handler.service.CoachFeed(ctx, actor, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, feed)
}
