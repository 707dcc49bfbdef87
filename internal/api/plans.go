package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitforge/backend/internal/service"
	"github.com/fitforge/backend/internal/types"
)

// PlanHandler exposes plan generation and the generated plan aggregates.
type PlanHandler struct {
	generation service.IGenerationService
	workouts   service.IWorkoutService
	nutrition  service.INutritionService
}

func NewPlanHandler(generation service.IGenerationService, workouts service.IWorkoutService, nutrition service.INutritionService) *PlanHandler {
	return &PlanHandler{
		generation: generation,
		workouts:   workouts,
		nutrition:  nutrition,
	}
}

// GenerateWorkoutPlan triggers a fresh workout generation run.
func (h *PlanHandler) GenerateWorkoutPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if !h.generation.GenerateWorkoutPlan(c.Request.Context(), userID) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "workout plan generation failed"})
		return
	}

	plan, err := h.workouts.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load generated plan"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GenerateNutritionPlan triggers a fresh nutrition generation run.
func (h *PlanHandler) GenerateNutritionPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if !h.generation.GenerateNutritionPlan(c.Request.Context(), userID) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "nutrition plan generation failed"})
		return
	}

	plan, err := h.nutrition.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load generated plan"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *PlanHandler) GetCurrentWorkoutPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.workouts.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ListWorkoutPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.workouts.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) GetWorkoutPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := h.workouts.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeleteWorkoutPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.workouts.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		writePlanError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlanHandler) GetCurrentNutritionPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.nutrition.GetCurrentPlan(c.Request.Context(), userID)
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) ListNutritionPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.nutrition.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) GetNutritionPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	plan, err := h.nutrition.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) DeleteNutritionPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.nutrition.DeletePlan(c.Request.Context(), userID, planID); err != nil {
		writePlanError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History lists the generation audit records.
func (h *PlanHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	history, err := h.workouts.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// RatePlan records user feedback on a generation run.
func (h *PlanHandler) RatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	historyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.RatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.workouts.RatePlan(c.Request.Context(), userID, historyID, &req); err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "history record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rate plan"})
		return
	}
	c.Status(http.StatusNoContent)
}

func writePlanError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "plan operation failed"})
}
