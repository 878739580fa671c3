// Package httpx provides JSON response helpers shared by the API handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bizdash/bizdash/internal/platform/validate"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// ErrInvalidID is returned by ParseID for non-numeric or non-positive ids.
var ErrInvalidID = errors.New("invalid id")

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string                `json:"error"`
	Details []validate.FieldError `json:"details,omitempty"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends an error body without field details.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// Invalid sends a 400 carrying the offending fields.
func Invalid(w http.ResponseWriter, message string, details []validate.FieldError) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: message, Details: details})
}

// DecodeJSON decodes the request body into target. Any decoding failure is
// reported as a validation error on the "body" path.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		msg := "malformed JSON"
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			msg = "request body is required"
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &validate.Error{Fields: []validate.FieldError{{
				Path:    typeErr.Field,
				Message: fmt.Sprintf("expected %s", typeErr.Type.String()),
			}}}
		}
		return &validate.Error{Fields: []validate.FieldError{{Path: "body", Message: msg}}}
	}
	return nil
}

// ParseID reads a positive int64 URL parameter.
func ParseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
