package handler

import (
	"net/http"

	"github.com/b5-ai/study-companion-be/store"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	session *store.Session
}

func NewSessionHandler(session *store.Session) *SessionHandler {
	return &SessionHandler{
		session: session,
	}
}

func (h *SessionHandler) HandleClear(c *gin.Context) {
	h.session.ResetDialogue()
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Chat history cleared"})
}

func (h *SessionHandler) HandleClearAll(c *gin.Context) {
	h.session.ResetAll()
	c.JSON(http.StatusOK, types.MessageResponse{Message: "Session fully reset"})
}
