package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/staffhub-server/internal/api/http/response"
	"github.com/dtroode/staffhub-server/internal/model"
)

const msgInternal = "internal server error"

// statusOf maps a service error to an HTTP status and a client-safe message.
func statusOf(err error) (int, string) {
	var reqErr *model.RequestError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest, reqErr.Msg
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "request body is too large"
	case errors.Is(err, model.ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	case errors.Is(err, model.ErrDuplicateIdentity):
		return http.StatusBadRequest, model.ErrDuplicateIdentity.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, model.ErrNotFound.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, model.ErrForbidden.Error()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func handleError(w http.ResponseWriter, err error) {
	status, msg := statusOf(err)
	response.Error(w, status, msg)
}
