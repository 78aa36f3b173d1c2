package schedules

import (
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/internal/routines"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	msgNoSchedule       = "El atleta no tiene un calendario activo."
	msgRoutineNotFound  = "La rutina no existe."
	msgScheduleConflict = "El calendario se ha modificado a la vez desde otra sesión. Inténtalo de nuevo."
)

type SetRequest struct {
	RoutineID string `json:"routineId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Slots     []Slot `json:"slots"`
}

type Handler struct {
	service *Service
	nowFunc func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/athletes/{id}/schedule", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-schedule")
	r.HandleFunc("/athletes/{id}/schedule", handler.HandleSet).Methods("PUT", "OPTIONS").Name("set-schedule")
	r.HandleFunc("/athletes/{id}/schedule", handler.HandleClear).Methods("DELETE", "OPTIONS").Name("clear-schedule")
	r.HandleFunc("/athletes/{id}/schedule/today", handler.HandleToday).Methods("GET", "OPTIONS").Name("schedule-today")
	r.HandleFunc("/athletes/{id}/schedule/week", handler.HandleWeek).Methods("GET", "OPTIONS").Name("schedule-week")
	r.HandleFunc("/athletes/{id}/schedule/adherence", handler.HandleAdherence).Methods("GET", "OPTIONS").Name("schedule-adherence")
}

func writeError(w http.ResponseWriter, err error) {
	if msg, ok := pkg.ValidationMessage(err); ok {
		pkg.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	switch {
	case errors.Is(err, ErrNoSchedule):
		pkg.WriteError(w, http.StatusNotFound, msgNoSchedule)
	case errors.Is(err, routines.ErrRoutineNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgRoutineNotFound)
	case errors.Is(err, ErrScheduleConflict):
		pkg.WriteError(w, http.StatusConflict, msgScheduleConflict)
	default:
		users.WriteError(w, err)
	}
}

// dateParam reads an optional YYYY-MM-DD query param, today if missing.
func (handler *Handler) dateParam(r *http.Request, name string, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	d, err := pkg.ParseDate(raw)
	if err != nil {
		log.Debugf("bad %s param: %s", name, err)
		return time.Time{}, false
	}
	return d, true
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.get")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	schedule, err := handler.service.Active(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, schedule)
}

func (handler *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.set")
	defer span.End()

	var req SetRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	params := SetParams{
		RoutineID: req.RoutineID,
		Slots:     req.Slots,
	}
	if req.StartDate != "" {
		start, err := pkg.ParseDate(req.StartDate)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
			return
		}
		params.StartDate = start
	}
	if req.EndDate != "" {
		end, err := pkg.ParseDate(req.EndDate)
		if err != nil {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
			return
		}
		params.EndDate = &end
	}

	actor, _ := users.FromContext(ctx)
	schedule, err := handler.service.Set(ctx, actor, mux.Vars(r)["id"], params)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, schedule)
}

func (handler *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.clear")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	if err := handler.service.Clear(ctx, actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, map[string]bool{"cleared": true})
}

func (handler *Handler) HandleToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.today")
	defer span.End()

	date, ok := handler.dateParam(r, "date", handler.nowFunc())
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	day, err := handler.service.Today(ctx, actor, mux.Vars(r)["id"], date)
	if err != nil {
		writeError(w, err)
		return
	}

	// null data means a rest day
	pkg.WriteJSONOK(w, day)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.week")
	defer span.End()

	date, ok := handler.dateParam(r, "date", handler.nowFunc())
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	week, err := handler.service.Week(ctx, actor, mux.Vars(r)["id"], date)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, week)
}

// HandleAdherence defaults to the last 28 days.
func (handler *Handler) HandleAdherence(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedules.adherence")
	defer span.End()

	now := handler.nowFunc()
	to, ok := handler.dateParam(r, "to", now)
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}
	from, ok := handler.dateParam(r, "from", to.AddDate(0, 0, -27))
	if !ok || from.After(to) {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	adherence, err := handler.service.AthleteAdherence(ctx, actor, mux.Vars(r)["id"], from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, adherence)
}
