package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_money/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps an error category onto an HTTP status code.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondWithError writes err as a JSON error body. Unexpected errors are
// logged and hidden behind fallbackMsg.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallbackMsg})
		return
	}
	logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": err.Error()})
}
