package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it to w with the given status
// and "Content-Type: application/json". It returns the number of body bytes
// written.
//
// If marshaling fails nothing has been sent yet, so the response becomes a
// plain-text 500 and the wrapped marshaling error is returned.
//
//	WriteJSON(w, user, http.StatusCreated)
//	WriteJSON(w, models.ErrorResponse{Error: "user not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
