package types

import (
	"net/http"

	appErr "github.com/rewear-app/backend/pkg/errors"
)

func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	code := string(appErr.CodeUnknown)
	if e, ok := err.(*appErr.AppError); ok {
		code = string(e.Code)
		return &APIError{Code: code, Message: e.Message, Fields: e.Fields}
	}
	return &APIError{Code: code, Message: err.Error()}
}

// StatusFor maps an error's code to the HTTP status the handler should write.
func StatusFor(err error) int {
	var e *appErr.AppError
	if ae, ok := err.(*appErr.AppError); ok {
		e = ae
	}
	if e == nil {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case appErr.CodeInvalid:
		return http.StatusBadRequest
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	case appErr.CodeForbidden:
		return http.StatusForbidden
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeConflict, appErr.CodeAlreadyExists:
		return http.StatusConflict
	case appErr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
