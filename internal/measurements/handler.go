package measurements

import (
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
)

const (
	msgMeasurementNotFound = "La medición no existe."

	// list range used when the query has no from param
	defaultRangeDays = 90
)

// MeasurementRequest takes the date as YYYY-MM-DD, today when empty.
type MeasurementRequest struct {
	Date       string  `json:"date"`
	WeightKg   float64 `json:"weightKg"`
	BodyFatPct float64 `json:"bodyFatPct"`
	ChestCm    float64 `json:"chestCm"`
	WaistCm    float64 `json:"waistCm"`
	HipsCm     float64 `json:"hipsCm"`
	ArmCm      float64 `json:"armCm"`
	ThighCm    float64 `json:"thighCm"`
	Notes      string  `json:"notes"`
}

type CheckInRequest struct {
	Date         string  `json:"date"`
	SleepHours   float64 `json:"sleepHours"`
	SleepQuality int     `json:"sleepQuality"`
	Energy       int     `json:"energy"`
	Stress       int     `json:"stress"`
	Soreness     int     `json:"soreness"`
	Notes        string  `json:"notes"`
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
	r.HandleFunc("/athletes/{id}/measurements", handler.HandleList).Methods("GET", "OPTIONS").Name("list-measurements")
	r.HandleFunc("/athletes/{id}/measurements", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-measurement")
	r.HandleFunc("/measurements/{id}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-measurement")
	r.HandleFunc("/athletes/{id}/checkins", handler.HandleListCheckIns).Methods("GET", "OPTIONS").Name("list-checkins")
	r.HandleFunc("/athletes/{id}/checkins", handler.HandleAddCheckIn).Methods("POST", "OPTIONS").Name("new-checkin")
}

func writeError(w http.ResponseWriter, err error) {
	if msg, ok := pkg.ValidationMessage(err); ok {
		pkg.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	if errors.Is(err, ErrMeasurementNotFound) {
		pkg.WriteError(w, http.StatusNotFound, msgMeasurementNotFound)
		return
	}
	users.WriteError(w, err)
}

// optionalDate parses a YYYY-MM-DD value, the zero time if empty.
func optionalDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return pkg.ParseDate(raw)
}

// rangeParams reads from/to, defaulting to the last 90 days.
func (handler *Handler) rangeParams(r *http.Request) (time.Time, time.Time, bool) {
	to, err := optionalDate(r.URL.Query().Get("to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if to.IsZero() {
		to = pkg.StartOfDay(handler.nowFunc())
	}
	from, err := optionalDate(r.URL.Query().Get("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultRangeDays)
	}
	return from, to, !from.After(to)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	from, to, ok := handler.rangeParams(r)
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	list, err := handler.service.List(ctx, actor, mux.Vars(r)["id"], from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, list)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.add")
	defer span.End()

	var req MeasurementRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	m, err := handler.service.Add(ctx, actor, mux.Vars(r)["id"], BodyMeasurement{
		Date:       date,
		WeightKg:   req.WeightKg,
		BodyFatPct: req.BodyFatPct,
		ChestCm:    req.ChestCm,
		WaistCm:    req.WaistCm,
		HipsCm:     req.HipsCm,
		ArmCm:      req.ArmCm,
		ThighCm:    req.ThighCm,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, m)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	actor, _ := users.FromContext(ctx)
	if err := handler.service.Delete(ctx, actor, id); err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, map[string]string{"deletedId": id})
}

func (handler *Handler) HandleListCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.listCheckIns")
	defer span.End()

	from, to, ok := handler.rangeParams(r)
	if !ok {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	list, err := handler.service.ListCheckIns(ctx, actor, mux.Vars(r)["id"], from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, list)
}

func (handler *Handler) HandleAddCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.addCheckIn")
	defer span.End()

	var req CheckInRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}
	date, err := optionalDate(req.Date)
	if err != nil {
		pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidDate)
		return
	}

	actor, _ := users.FromContext(ctx)
	c, err := handler.service.AddCheckIn(ctx, actor, mux.Vars(r)["id"], CheckIn{
		Date:         date,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Energy:       req.Energy,
		Stress:       req.Stress,
		Soreness:     req.Soreness,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, c)
}
