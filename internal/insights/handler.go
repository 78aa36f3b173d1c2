package insights

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitcoach/internal/llm"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/traininglogs"
	"github.com/2beens/fitcoach/internal/users"
	"github.com/2beens/fitcoach/pkg"

	"github.com/gorilla/mux"
)

const (
	msgAIDisabled      = "El asistente de IA no está disponible en este momento."
	msgAIFailed        = "El asistente de IA no ha podido responder. Inténtalo de nuevo."
	msgLogNotCompleted = "El entrenamiento aún no está terminado."
	msgLogNotFound     = "El registro de entrenamiento no existe."
)

type AskRequest struct {
	Question string `json:"question"`
}

type Handler struct {
	service *Service
	// wraps the routes that call the model
	aiLimiter func(http.Handler) http.Handler
}

// NewHandler takes the middleware guarding the AI routes, nil for none.
func NewHandler(service *Service, aiLimiter func(http.Handler) http.Handler) *Handler {
	if aiLimiter == nil {
		aiLimiter = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{
		service:   service,
		aiLimiter: aiLimiter,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.Handle("/logs/{id}/feedback", handler.aiLimiter(http.HandlerFunc(handler.HandleWorkoutFeedback))).Methods("POST", "OPTIONS").Name("workout-feedback")
	r.Handle("/athletes/{id}/insights/readiness", handler.aiLimiter(http.HandlerFunc(handler.HandleReadiness))).Methods("POST", "OPTIONS").Name("insight-readiness")
	r.Handle("/athletes/{id}/insights/weekly", handler.aiLimiter(http.HandlerFunc(handler.HandleWeeklyReport))).Methods("POST", "OPTIONS").Name("insight-weekly")
	r.Handle("/athletes/{id}/insights/ask", handler.aiLimiter(http.HandlerFunc(handler.HandleAsk))).Methods("POST", "OPTIONS").Name("insight-ask")
	r.HandleFunc("/athletes/{id}/insights", handler.HandleList).Methods("GET", "OPTIONS").Name("list-insights")
}

func writeError(w http.ResponseWriter, err error) {
	if msg, ok := pkg.ValidationMessage(err); ok {
		pkg.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	switch {
	case errors.Is(err, llm.ErrDisabled):
		pkg.WriteError(w, http.StatusServiceUnavailable, msgAIDisabled)
	case errors.Is(err, ErrInvalidAIResponse),
		errors.Is(err, llm.ErrEmptyCompletion),
		errors.Is(err, llm.ErrProviderResponse):
		pkg.WriteError(w, http.StatusBadGateway, msgAIFailed)
	case errors.Is(err, ErrLogNotCompleted):
		pkg.WriteError(w, http.StatusConflict, msgLogNotCompleted)
	case errors.Is(err, traininglogs.ErrLogNotFound):
		pkg.WriteError(w, http.StatusNotFound, msgLogNotFound)
	default:
		users.WriteError(w, err)
	}
}

func (handler *Handler) HandleWorkoutFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.workoutFeedback")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	insight, err := handler.service.WorkoutFeedback(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, insight)
}

func (handler *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.readiness")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	insight, err := handler.service.Readiness(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, insight)
}

func (handler *Handler) HandleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.weeklyReport")
	defer span.End()

	actor, _ := users.FromContext(ctx)
	insight, err := handler.service.WeeklyReport(ctx, actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, insight)
}

func (handler *Handler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.ask")
	defer span.End()

	var req AskRequest
	if !pkg.DecodeJSONBody(w, r, &req) {
		return
	}

	actor, _ := users.FromContext(ctx)
	answer, err := handler.service.Ask(ctx, actor, mux.Vars(r)["id"], req.Question)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, answer)
}

// HandleList takes optional type and limit query params.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.list")
	defer span.End()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			pkg.WriteError(w, http.StatusBadRequest, pkg.MsgInvalidPageParam)
			return
		}
	}

	actor, _ := users.FromContext(ctx)
	list, err := handler.service.List(ctx, actor, mux.Vars(r)["id"], Type(r.URL.Query().Get("type")), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSONOK(w, list)
}
