package adaptor

import (
	"errors"
	"net/http"

	"restaurant-ordering/internal/usecase"
	"restaurant-ordering/pkg/apperr"
	"restaurant-ordering/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps service error kinds to HTTP responses. Each kind
// stays a distinct outcome for the client: state conflicts are 409, role
// denials 403, unknown ids 404, bad input 400. Storage failures and anything
// unrecognized collapse to an opaque 500.
func respondServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		log.Warn(operation+" failed - validation", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, apperr.ErrIllegalTransition),
		errors.Is(err, apperr.ErrInvalidStateForEdit):
		log.Warn(operation+" failed - state conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apperr.ErrEmptyReport):
		log.Info(operation + " - nothing to export")
		utils.ResponseNotFound(w, "no completed payments to export")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
