package handler

import (
	"net/http"

	"github.com/b5-ai/study-companion-be/service"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/gin-gonic/gin"
)

type AskHandler struct {
	assistant *service.AssistantService
}

func NewAskHandler(assistant *service.AssistantService) *AskHandler {
	return &AskHandler{
		assistant: assistant,
	}
}

// HandleAsk answers a question, either with text grounded in the
// study material or with an image-generation URL.
func (h *AskHandler) HandleAsk(c *gin.Context) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, types.MessageResponse{
			Message: "question is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.assistant.Ask(c.Request.Context(), req.Question))
}
