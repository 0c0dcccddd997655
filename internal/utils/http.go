package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

// errorBody is the JSON shape of errors written by the status API and the
// auth middleware.
type errorBody struct {
	Error string `json:"error"`
}

// WriteJSON marshals data and writes it with statusCode. When data cannot be
// marshalled a 500 is written instead and the marshalling error returned.
//
//	WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "response encoding failed")
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteJSONError writes {"error": msg} with statusCode.
func WriteJSONError(w http.ResponseWriter, statusCode int, msg string) {
	body, _ := json.Marshal(errorBody{Error: msg})

	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}
