package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses with a {"detail": ...} body
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err)))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err)))
	default:
		// Store errors are logged where they are classified; anything else is unexpected.
		if !errors.Is(err, apperrors.ErrStore) {
			logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

// AbortWithDetail aborts the request with status and a {"detail": ...} body
func AbortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
