package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/comitanigiacomo/fitjournal-engine/internal/core/services"
)

type FoodHandler struct {
	foods  *services.FoodService
	lookup *services.LookupService
}

func NewFoodHandler(foods *services.FoodService, lookup *services.LookupService) *FoodHandler {
	return &FoodHandler{
		foods:  foods,
		lookup: lookup,
	}
}

type logFoodRequest struct {
	Day      string   `json:"day"`
	Name     string   `json:"name" binding:"required"`
	Calories *float64 `json:"calories"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	Barcode  string   `json:"barcode"`
}

type prefillResponse struct {
	Found   bool               `json:"found"`
	Prefill domain.FoodPrefill `json:"prefill"`
}

// RegisterRoutes mounts the food routes. lookupGuards run before the barcode lookup only.
func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup, lookupGuards ...gin.HandlerFunc) {
	foods := router.Group("/foods")
	{
		foods.POST("", h.Log)
		foods.GET("", h.ListByDay)
		foods.GET("/barcode/:code", append(lookupGuards, h.LookupBarcode)...)
	}
}

// Log godoc
// @Summary Log a consumed food into a day bucket
// @Tags foods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body logFoodRequest true "food"
// @Success 201 {object} domain.ConsumedFood
// @Failure 400 {object} map[string]string
// @Router /foods [post]
func (h *FoodHandler) Log(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.Log(c.Request.Context(), services.LogFoodInput{
		UserID:   userID,
		Day:      req.Day,
		Name:     req.Name,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
		Barcode:  req.Barcode,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, food)
}

// ListByDay godoc
// @Summary List one day's foods
// @Tags foods
// @Security BearerAuth
// @Produce json
// @Param day query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {array} domain.ConsumedFood
// @Failure 400 {object} map[string]string
// @Router /foods [get]
func (h *FoodHandler) ListByDay(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	list, err := h.foods.ListByDay(c.Request.Context(), userID, c.Query("day"))
	if err != nil {
		handleError(c, err)
		return
	}
	if list == nil {
		list = []*domain.ConsumedFood{}
	}

	c.JSON(http.StatusOK, list)
}

// LookupBarcode godoc
// @Summary Resolve a barcode into a food prefill
// @Tags foods
// @Security BearerAuth
// @Produce json
// @Param code path string true "EAN/UPC barcode"
// @Success 200 {object} prefillResponse
// @Failure 400,502 {object} map[string]string
// @Router /foods/barcode/{code} [get]
func (h *FoodHandler) LookupBarcode(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	prefill, found, err := h.lookup.ResolveFoodPrefillFromBarcode(c.Request.Context(), c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prefillResponse{Found: found, Prefill: prefill})
}
