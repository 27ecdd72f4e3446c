package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/fitjournal-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

type WorkoutHandler struct {
	svc *services.WorkoutService
}

func NewWorkoutHandler(svc *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{
		svc: svc,
	}
}

type createWorkoutRequest struct {
	Name            string    `json:"name" binding:"required"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes"`
	DurationMinutes float64   `json:"duration_minutes" binding:"required"`
	CaloriesBurned  float64   `json:"calories_burned"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type updateWorkoutRequest struct {
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Notes           *string   `json:"notes"`
	DurationMinutes *float64  `json:"duration_minutes"`
	CaloriesBurned  *float64  `json:"calories_burned"`
	OccurredAt      time.Time `json:"occurred_at"`
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.POST("", h.Create)
		workouts.GET("", h.List)
		workouts.GET("/:id", h.Get)
		workouts.PUT("/:id", h.Update)
		workouts.DELETE("/:id", h.Delete)
	}
}

func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}

// Create godoc
// @Summary Log a workout
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body createWorkoutRequest true "workout"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} map[string]string
// @Router /workouts [post]
func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.svc.Create(c.Request.Context(), services.CreateWorkoutInput{
		UserID:          userID,
		Name:            req.Name,
		Type:            req.Type,
		Notes:           req.Notes,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		OccurredAt:      req.OccurredAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// List godoc
// @Summary List workouts, most recent first
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Workout
// @Router /workouts [get]
func (h *WorkoutHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get godoc
// @Summary Fetch one workout
// @Tags workouts
// @Security BearerAuth
// @Produce json
// @Param id path string true "workout id"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} map[string]string
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	workout, err := h.svc.GetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// Update godoc
// @Summary Edit a workout; omitted fields keep their value
// @Tags workouts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "workout id"
// @Param body body updateWorkoutRequest true "changes"
// @Success 200 {object} domain.Workout
// @Failure 400,404 {object} map[string]string
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := h.svc.Update(c.Request.Context(), services.UpdateWorkoutInput{
		ID:              c.Param("id"),
		UserID:          userID,
		Name:            req.Name,
		Type:            req.Type,
		Notes:           req.Notes,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		OccurredAt:      req.OccurredAt,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, workout)
}

// Delete godoc
// @Summary Delete a workout
// @Tags workouts
// @Security BearerAuth
// @Param id path string true "workout id"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
