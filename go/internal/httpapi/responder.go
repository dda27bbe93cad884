package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// JSON writes an arbitrary payload with the given status
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Data writes a { "data": ... } envelope
func Data(w http.ResponseWriter, status int, payload interface{}) {
	JSON(w, status, map[string]interface{}{"data": payload})
}

// Error writes a { "error": ... } body
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{"error": message})
}

// ErrorWithDetails writes a { "error": ..., "details": ... } body
func ErrorWithDetails(w http.ResponseWriter, status int, message string, details interface{}) {
	JSON(w, status, map[string]interface{}{"error": message, "details": details})
}

// ValidationFailed writes a 400 with per-field detail extracted from
// validator errors
func ValidationFailed(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Error(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fieldMessage(fe)
	}
	ErrorWithDetails(w, http.StatusBadRequest, "Invalid payload.", details)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be non-negative", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

