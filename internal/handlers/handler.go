// Package handlers wires the HTTP surface of the service to the directory
// and record store.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/store"
)

// Handler serves the patient and assessment endpoints. The stores are
// injected so the same handlers run against postgres or the in-memory
// fallback.
type Handler struct {
	dir     store.Directory
	records store.RecordStore
	logger  *zap.Logger
}

// New creates a handler over the given stores.
func New(dir store.Directory, records store.RecordStore, logger *zap.Logger) *Handler {
	return &Handler{
		dir:     dir,
		records: records,
		logger:  logger,
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUnknownPatient):
		return http.StatusNotFound
	case errors.Is(err, store.ErrValidation), errors.Is(err, gcs.ErrInvalidComponentScore):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(msg, zap.Error(err))
		c.JSON(status, gin.H{"message": msg})
		return
	}
	c.JSON(status, gin.H{"message": msg, "details": err.Error()})
}

func patientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("patient_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid patient ID format"})
		return 0, false
	}
	return uint(id), true
}
