package analytics

import (
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
)

// progression window when the query has no since param
const defaultProgressionDays = 90

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
	r.HandleFunc("/athletes/{id}/analytics/progression", handler.HandleProgression).Methods("GET", "OPTIONS").Name("analytics-progression")
	r.HandleFunc("/athletes/{id}/analytics/week", handler.HandleWeek).Methods("GET", "OPTIONS").Name("analytics-week")
	r.HandleFunc("/coach/dashboard", handler.HandleDashboard).Methods("GET", "OPTIONS").Name("coach-dashboard")
}

func (handler *Handler) dateParam(r *http.Request, name string, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	d, err := pkg.ParseDate(raw)
	return d, err == nil
}

// HandleProgression takes since (YYYY-MM-DD) and an optional exercise name
// to narrow the answer down to a single progression.
func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.progression")
	defer span.End()

	since, ok := handler.dateParam(r, "since", handler.nowFunc().AddDate(0, 0, -defaultProgressionDays))
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	list, err := handler.service.Progression(ctx, actor, mux.Vars(r)["id"], since)
	if err != nil {
		users.WriteError(w, err)
		return
	}

	if exercise := strings.TrimSpace(r.URL.Query().Get("exercise")); exercise != "" {
		filtered := make([]Progression, 0, 1)
		for _, p := range list {
			if exerciseKey(p.Exercise) == exerciseKey(exercise) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}

	pkg.WriteJSONOK(w, list)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.week")
	defer span.End()

	date, ok := handler.dateParam(r, "date", handler.nowFunc())
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	cmp, err := handler.service.WeekComparison(ctx, actor, mux.Vars(r)["id"], date)
	if err != nil {
		users.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, cmp)
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analytics.dashboard")
	defer span.End()

	date, ok := handler.dateParam(r, "date", handler.nowFunc())
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	entries, err := handler.service.CoachDashboard(ctx, actor, date)
	if err != nil {
		users.WriteError(w, err)
		return
	}

	pkg.WriteJSONOK(w, entries)
}
