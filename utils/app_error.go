package utils

import "net/http"

// Issue is one field-level validation problem.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an error that knows which HTTP status it maps to.
type AppError struct {
	Status  int
	Message string
	Issues  []Issue
}

func (e *AppError) Error() string { return e.Message }

// Kind is "fail" for client errors and "error" for server errors.
func (e *AppError) Kind() string {
	if e.Status >= 500 {
		return "error"
	}
	return "fail"
}

func BadRequest(msg string) *AppError   { return &AppError{Status: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) *AppError { return &AppError{Status: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) *AppError    { return &AppError{Status: http.StatusForbidden, Message: msg} }
func NotFound(msg string) *AppError     { return &AppError{Status: http.StatusNotFound, Message: msg} }

// Invalid builds a 400 carrying an issue list.
func Invalid(issues ...Issue) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "validation failed", Issues: issues}
}
