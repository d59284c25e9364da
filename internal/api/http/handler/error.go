package handler

import (
	"errors"
	"net/http"

	"github.com/hyeonju-dev/auth-server/internal/model"
)

// handleError maps a service failure to a status code and writes the
// error envelope.
func handleError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, model.ErrExpiredRefreshToken),
		errors.Is(err, model.ErrSessionInvalidated),
		errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, model.ErrAdminTokenForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, model.ErrMissingRefreshToken),
		errors.Is(err, model.ErrInvalidTokenFormat),
		errors.Is(err, model.ErrMalformedToken),
		errors.Is(err, model.ErrNotRefreshToken),
		errors.Is(err, model.ErrInvalidRefreshToken),
		errors.Is(err, model.ErrDuplicateNickname),
		errors.Is(err, model.ErrWeakPassword):
		status = http.StatusBadRequest
		message = err.Error()
	}

	writeJSON(w, status, message, nil)
}
