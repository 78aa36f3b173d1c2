package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const maxJSONBodyBytes = 1 << 20

// DecodeJSONBody checks the content type and decodes the request body into dst.
// On failure the error answer is already written and false is returned.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Header.Get("Content-Type") != ContentType.JSON {
		WriteError(w, http.StatusUnsupportedMediaType, MsgInvalidContent)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)).Decode(dst); err != nil {
		log.Tracef("decode json body [%s]: %s", r.URL.Path, err)
		WriteError(w, http.StatusBadRequest, MsgInvalidBody)
		return false
	}

	return true
}
