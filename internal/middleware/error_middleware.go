package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drosales/campusq/internal/app/models/dto"
	"github.com/drosales/campusq/internal/pkg/apperrors"
	"github.com/drosales/campusq/internal/pkg/logger"
)

// HandleAPIError maps a service-layer error to its HTTP response. The
// user-facing message travels inside the error itself; the mapping here
// only decides status and code.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingParameter):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeMissingParameter, err.Error())))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logStoreFailure(c, err)
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, err.Error())))
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Error interno del servidor")))
	}
}

// logStoreFailure logs the driver-level cause, which never reaches clients.
func logStoreFailure(c *gin.Context, err error) {
	var qerr *apperrors.QueryError
	event := logger.Error().Str("path", c.Request.URL.Path)
	if errors.As(err, &qerr) && qerr.Cause != nil {
		event = event.Err(qerr.Cause)
	} else {
		event = event.Err(err)
	}
	event.Msg("Store unavailable")
}
