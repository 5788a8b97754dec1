package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Dan9191/rent-portal/internal/integrations/backend"
	"github.com/Dan9191/rent-portal/internal/utils"
	"github.com/sirupsen/logrus"
)

// AppError is a failure with the HTTP status and code it should be reported as.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
	Details    any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func badRequest(code, message string, details any) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: code, Message: message, Details: details}
}

// classify maps an error from the lower layers onto an AppError.
func classify(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var se *backend.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusUnauthorized:
			return &AppError{StatusCode: http.StatusUnauthorized, Code: utils.ErrCodeUnauthorized, Message: "Invalid credentials", Err: err}
		case http.StatusForbidden:
			return &AppError{StatusCode: http.StatusForbidden, Code: utils.ErrCodeForbidden, Message: "Forbidden", Err: err}
		case http.StatusNotFound:
			return &AppError{StatusCode: http.StatusNotFound, Code: utils.ErrCodeNotFound, Message: "Not found", Err: err}
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return &AppError{StatusCode: http.StatusBadRequest, Code: utils.ErrCodeValidation, Message: "Rejected by backend", Err: err}
		default:
			return &AppError{StatusCode: http.StatusBadGateway, Code: utils.ErrCodeBackendUnavailable, Message: "Backend unavailable", Err: err}
		}
	}

	var ue *url.Error
	if errors.As(err, &ue) {
		return &AppError{StatusCode: http.StatusBadGateway, Code: utils.ErrCodeBackendUnavailable, Message: "Backend unavailable", Err: err}
	}

	return &AppError{StatusCode: http.StatusInternalServerError, Code: utils.ErrCodeInternal, Message: "Internal server error", Err: err}
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := classify(err)
	entry := h.log.WithFields(logrus.Fields{
		"path":   r.URL.Path,
		"status": appErr.StatusCode,
	})
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	if appErr.StatusCode >= http.StatusInternalServerError {
		entry.Error(appErr.Message)
	} else {
		entry.Debug(appErr.Message)
	}
	utils.RespondError(w, appErr.StatusCode, appErr.Code, appErr.Message, appErr.Details)
}
