package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/internal/service"
	"github.com/fitforge/backend/internal/types"
)

// ExerciseHandler exposes the exercise library.
type ExerciseHandler struct {
	exerciseService service.IExerciseService
}

func NewExerciseHandler(exerciseService service.IExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	var filter types.ExerciseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter"})
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercises"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exercises": exercises})
}

func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExercise(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load exercise"})
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req types.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create exercise"})
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update exercise"})
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete exercise"})
		return
	}
	c.Status(http.StatusNoContent)
}
