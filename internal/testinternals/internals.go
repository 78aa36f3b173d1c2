// Package testinternals holds the HTTP helpers shared by handler tests.
package testinternals

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/fitcoach/internal/users"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

type RouteSetter interface {
	SetupRoutes(r *mux.Router)
}

// Envelope is the decoded response body, with the payload left raw.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// DoRequest routes a JSON request through the handler's routes, acting as actor
// (nil for an anonymous request).
func DoRequest(t *testing.T, h RouteSetter, actor *users.User, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	r := mux.NewRouter()
	h.SetupRoutes(r)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if actor != nil {
		req = req.WithContext(users.NewContext(req.Context(), actor))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// DecodeEnvelope unmarshals the envelope and, if data is not nil, its payload.
func DecodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, data any) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}
