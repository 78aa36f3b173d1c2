package internal

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// healthHandler runs every dependency check and answers 503 if any fails.
func healthHandler(versionInfo string, checks map[string]func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := HealthResponse{
			Status:  "ok",
			Version: versionInfo,
			Checks:  make(map[string]string, len(checks)),
		}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Errorf("health check [%s]: %s", name, err)
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "ok"
		}

		if resp.Status != "ok" {
			pkg.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		pkg.WriteJSONOK(w, resp)
	}
}

func handleUnknownRoute(w http.ResponseWriter, r *http.Request) {
	log.Tracef("unknown route: %s %s", r.Method, r.URL.Path)
	pkg.WriteError(w, http.StatusNotFound, pkg.MsgNotFound)
}
