package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotFound       = errors.New("Resource not found")
	ErrInvalidID      = errors.New("Invalid identifier")
	ErrMissingFile    = errors.New("Required file is missing")
	ErrNotAnImage     = errors.New("Uploaded file is not an image")
	ErrInvalidState   = errors.New("Unknown project state")
	ErrStore          = errors.New("Document store error")
	ErrDecode         = errors.New("Stored document could not be decoded")
)

// Order matters: the first entry matching through errors.Is wins.
var errorMap = []struct {
	err    error
	status int
}{
	{ErrNotFound, ErrStatusNotFound},
	{ErrClient, ErrStatusClient},
	{ErrInvalidID, ErrStatusClient},
	{ErrMissingFile, ErrStatusClient},
	{ErrNotAnImage, ErrStatusClient},
	{ErrInvalidState, ErrStatusClient},
	{ErrStore, ErrStatusInternalServer},
	{ErrDecode, ErrStatusInternalServer},
	{ErrInternalServer, ErrStatusInternalServer},
}

func GetErrorStatusCode(err error) int {
	for _, entry := range errorMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return ErrStatusInternalServer
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError reports request fields that are missing or malformed.
type ValidationError struct {
	Errors []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Errors: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return ErrClient.Error()
	}
	parts := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Tag))
	}
	return "Invalid request fields: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrClient
}
