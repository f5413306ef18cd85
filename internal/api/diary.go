package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caloria-app/backend/internal/models"
	"github.com/caloria-app/backend/internal/service"
)

// DiaryHandler exposes the profile document and its mutation operations.
type DiaryHandler struct {
	diary *service.DiaryService
}

// NewDiaryHandler creates a new DiaryHandler instance.
func NewDiaryHandler(diary *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diary: diary}
}

// RegisterRoutes registers the diary routes.
func (h *DiaryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.GetProfile)
	router.PUT("/profile/goal", h.UpdateGoal)
	router.GET("/today", h.GetToday)

	foods := router.Group("/foods")
	{
		foods.POST("", h.AddFood)
		foods.DELETE("/:id", h.RemoveFood)
	}

	exercises := router.Group("/exercises")
	{
		exercises.POST("", h.AddExercise)
		exercises.DELETE("/:id", h.RemoveExercise)
	}
}

// GetProfile returns the full profile document.
func (h *DiaryHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.diary.Profile())
}

// GetToday returns the aggregated view of today's diary entries.
func (h *DiaryHandler) GetToday(c *gin.Context) {
	summary := service.TodaySummary(h.diary.Profile())
	c.JSON(http.StatusOK, summary)
}

// AddFood creates a food entry. The server stamps the identifier and
// timestamp; callers only supply the nutrition facts.
func (h *DiaryHandler) AddFood(c *gin.Context) {
	var req struct {
		Name     string  `json:"name" binding:"required"`
		Calories float64 `json:"calories" binding:"gte=0"`
		Protein  float64 `json:"protein" binding:"gte=0"`
		Carbs    float64 `json:"carbs" binding:"gte=0"`
		Fat      float64 `json:"fat" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := service.NewFoodItem(req.Name, req.Calories, req.Protein, req.Carbs, req.Fat)
	profile, err := h.diary.AddFood(item)
	if err != nil {
		log.Printf("Failed to add food: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save food entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "profile": profile})
}

// RemoveFood deletes the food entry with the given identifier. Removing an
// unknown identifier is a no-op and still succeeds.
func (h *DiaryHandler) RemoveFood(c *gin.Context) {
	profile, err := h.diary.RemoveFood(c.Param("id"))
	if err != nil {
		log.Printf("Failed to remove food: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove food entry"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddExercise creates an exercise entry.
func (h *DiaryHandler) AddExercise(c *gin.Context) {
	var req struct {
		Name           string  `json:"name" binding:"required"`
		Duration       float64 `json:"duration" binding:"gte=0"`
		CaloriesBurned float64 `json:"caloriesBurned" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := service.NewExercise(req.Name, req.Duration, req.CaloriesBurned)
	profile, err := h.diary.AddExercise(item)
	if err != nil {
		log.Printf("Failed to add exercise: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save exercise entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item, "profile": profile})
}

// RemoveExercise deletes the exercise entry with the given identifier.
func (h *DiaryHandler) RemoveExercise(c *gin.Context) {
	profile, err := h.diary.RemoveExercise(c.Param("id"))
	if err != nil {
		log.Printf("Failed to remove exercise: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove exercise entry"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateGoal replaces the profile's daily goal wholesale.
func (h *DiaryHandler) UpdateGoal(c *gin.Context) {
	var req struct {
		CalorieTarget float64 `json:"calorieTarget" binding:"gte=0"`
		ProteinTarget float64 `json:"proteinTarget" binding:"gte=0"`
		CarbsTarget   float64 `json:"carbsTarget" binding:"gte=0"`
		FatTarget     float64 `json:"fatTarget" binding:"gte=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.diary.UpdateDailyGoal(models.DailyGoal{
		CalorieTarget: req.CalorieTarget,
		ProteinTarget: req.ProteinTarget,
		CarbsTarget:   req.CarbsTarget,
		FatTarget:     req.FatTarget,
	})
	if err != nil {
		log.Printf("Failed to update daily goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update daily goal"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
