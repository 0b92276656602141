package mux

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"
)

// jsonMediaTypes are the request content types a kata endpoint accepts
var jsonMediaTypes = map[string]bool{
	"application/json": true,
	"text/json":        true,
}

// decodeRequest reads the JSON body into payload. On failure it writes the error response
// and returns false
func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !jsonMediaTypes[mediaType] {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		logger(r).WithError(err).Debug("could not decode request")
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeJSONError hides the details of server errors from the client
func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	msg := http.StatusText(statusCode)
	if statusCode < 500 && err != nil {
		msg = err.Error()
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}

// writeInputError rejects a request whose kata input was invalid
func (m *Mux) writeInputError(w http.ResponseWriter, r *http.Request, kata string, err error) {
	logger(r).WithError(err).WithField("kata", kata).Debug("rejected input")
	m.metrics.InputError(kata)
	writeJSONError(w, http.StatusBadRequest, err)
}
