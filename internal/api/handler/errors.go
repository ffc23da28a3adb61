package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/footballagentsl/accounts-api/internal/core/domain"
)

// respondError writes the JSON error envelope for domain errors. Anything it
// does not recognise, including an expired or cancelled request context, is
// returned to Echo so the timeout middleware and HTTPErrorHandler answer it.
func respondError(c echo.Context, err error) error {
	status, msg, ok := classify(err)
	if !ok {
		return err
	}
	return c.JSON(status, errorResponse{Error: msg})
}

func classify(err error) (int, string, bool) {
	var storeErr *domain.StoreError

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return 0, "", false
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, domain.ErrMissingFields.Error(), true
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, domain.ErrInvalidRole.Error(), true
	case errors.Is(err, domain.ErrNoUpdatableFields):
		return http.StatusBadRequest, domain.ErrNoUpdatableFields.Error(), true
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, domain.ErrDuplicateEmail.Error(), true
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, domain.ErrProfileExists.Error(), true
	case errors.Is(err, domain.ErrIdempotencyInProgress):
		return http.StatusConflict, domain.ErrIdempotencyInProgress.Error(), true
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		return http.StatusUnprocessableEntity, domain.ErrIdempotencyKeyReused.Error(), true
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, domain.ErrAccountNotFound.Error(), true
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, domain.ErrProfileNotFound.Error(), true
	case errors.Is(err, domain.ErrClubNotFound):
		return http.StatusNotFound, domain.ErrClubNotFound.Error(), true
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, storeErr.Error(), true
	case errors.Is(err, domain.ErrHashFailure):
		return http.StatusInternalServerError, causeMessage(err, domain.ErrHashFailure), true
	}
	return 0, "", false
}

// causeMessage strips the operation prefixes added on the way up and returns
// the message of the error that first wrapped target.
func causeMessage(err, target error) string {
	cur := err
	for {
		next := errors.Unwrap(cur)
		if next == nil || next == target || !errors.Is(next, target) {
			return cur.Error()
		}
		cur = next
	}
}

// pathID parses the named path parameter as an int64 id.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	return id, err == nil
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
}

func invalidPayload(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
}
