package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caloria-app/backend/internal/service"
)

// AssistantHandler handles chat requests to the AI assistant.
type AssistantHandler struct {
	assistant *service.AssistantService
	diary     *service.DiaryService
}

// NewAssistantHandler creates a new AssistantHandler instance.
func NewAssistantHandler(assistant *service.AssistantService, diary *service.DiaryService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant, diary: diary}
}

// RegisterRoutes registers the assistant routes.
func (h *AssistantHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/assistant/chat", h.Chat)
}

// Chat forwards the user message to the assistant. Callers may supply their
// own context block; when omitted it is built from today's diary totals. The
// endpoint always answers 200 except on upstream failure, which yields 500
// with a fixed apology.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
		Context string `json:"context"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contextInfo := req.Context
	if contextInfo == "" {
		profile := h.diary.Profile()
		contextInfo = service.BuildDailyContext(service.TodaySummary(profile), profile.DailyGoal)
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.Message, contextInfo)
	if err != nil {
		log.Printf("Assistant request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": service.MsgRequestFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}
