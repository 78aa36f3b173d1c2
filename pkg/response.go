package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// Envelope is the shape of every JSON answer of the API:
//
//	{"success": true, "data": ...}
//	{"success": false, "error": "..."}
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

// WriteJSON wraps data into a success envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	respBytes, err := json.Marshal(Envelope{
		Success: true,
		Data:    data,
	})
	if err != nil {
		log.Errorf("marshal response envelope: %s", err)
		WriteError(w, http.StatusInternalServerError, MsgInternal)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}

func WriteJSONOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteError answers with a failure envelope. The message is shown to the end user as is.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	respBytes, err := json.Marshal(Envelope{
		Success: false,
		Error:   message,
	})
	if err != nil {
		// cannot really happen with a plain string, but don't leave the client hanging
		http.Error(w, message, statusCode)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}
