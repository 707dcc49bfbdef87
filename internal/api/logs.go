package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/internal/service"
	"github.com/fitforge/backend/internal/types"
)

// LogHandler exposes workout logs and progress tracking.
type LogHandler struct {
	logService service.ILogService
}

func NewLogHandler(logService service.ILogService) *LogHandler {
	return &LogHandler{logService: logService}
}

func (h *LogHandler) CreateWorkoutLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	log, err := h.logService.CreateWorkoutLog(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workout log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (h *LogHandler) ListWorkoutLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.logService.ListWorkoutLogs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workout logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *LogHandler) DeleteWorkoutLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.logService.DeleteWorkoutLog(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workout log"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LogHandler) CreateProgressEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ProgressEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.logService.CreateProgressEntry(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create progress entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LogHandler) ListProgressEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entries, err := h.logService.ListProgressEntries(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list progress entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
