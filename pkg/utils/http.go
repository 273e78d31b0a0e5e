package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the uniform API envelope
// swagger:model Response
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func WriteSuccess(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, Response{Status: "success", Message: message, Data: data}, http.StatusOK)
}

func WriteError(w http.ResponseWriter, message string, data any, code int) error {
	return WriteJSON(w, Response{Status: "error", Message: message, Data: data}, code)
}
