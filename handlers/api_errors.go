package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kevinaaaquil/oct-library/apperr"
)

// APIError is the JSON error body of the content API.
type APIError struct {
	status  int
	Code    string `json:"code" doc:"Machine-readable error code"`
	Message string `json:"message" doc:"Human-readable error message"`
	Details any    `json:"details,omitempty" doc:"Additional error details"`
}

func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

func (e *APIError) ContentType(_ string) string {
	return "application/json"
}

var registerErrorHandler sync.Once

// RegisterErrorHandler makes huma report apperr errors with their code and status.
// huma.NewError is package state, so this only runs once per process.
func RegisterErrorHandler() {
	registerErrorHandler.Do(func() {
		huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
			for _, err := range errs {
				var appErr *apperr.Error
				if errors.As(err, &appErr) {
					return &APIError{
						status:  appErr.HTTPStatus(),
						Code:    string(appErr.Code),
						Message: appErr.Message,
						Details: appErr.Details,
					}
				}
			}
			var details []string
			for _, err := range errs {
				if err != nil {
					details = append(details, err.Error())
				}
			}
			apiErr := &APIError{status: status, Code: statusToCode(status), Message: message}
			if len(details) > 0 {
				apiErr.Details = details
			}
			return apiErr
		}
	})
}

func statusToCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return string(apperr.CodeValidation)
	case http.StatusNotFound:
		return string(apperr.CodeNotFound)
	case http.StatusConflict:
		return string(apperr.CodeConflict)
	default:
		return string(apperr.CodeInternal)
	}
}
