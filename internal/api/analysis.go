package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caloria-app/backend/internal/service"
)

// AnalysisHandler handles food image analysis requests.
type AnalysisHandler struct {
	vision *service.VisionService
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(vision *service.VisionService) *AnalysisHandler {
	return &AnalysisHandler{vision: vision}
}

// RegisterRoutes registers the analysis routes.
func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/foods/analyze", h.AnalyzeFood)
}

// AnalyzeFood estimates nutrition facts for a food photo. A missing image is
// rejected before any upstream call; a missing credential and upstream or
// parse failures answer 500 with distinct messages.
func (h *AnalysisHandler) AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL da imagem é obrigatória"})
		return
	}

	analysis, err := h.vision.AnalyzeFood(c.Request.Context(), req.ImageURL)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chave da API OpenAI não configurada"})
			return
		}

		log.Printf("Food analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar a imagem"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}
