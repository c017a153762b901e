package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/b5-ai/study-companion-be/service"
	"github.com/b5-ai/study-companion-be/store"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	session     *store.Session
	fileService *service.FileService
}

func NewFileHandler(session *store.Session, fileService *service.FileService) *FileHandler {
	return &FileHandler{
		session:     session,
		fileService: fileService,
	}
}

func (h *FileHandler) HandleList(c *gin.Context) {
	h.session.Lock()
	files := h.session.Documents.List()
	h.session.Unlock()

	c.JSON(http.StatusOK, types.FilesResponse{Files: files})
}

// HandleDelete removes a document by its normalized id. A miss is a
// soft message, not an error status.
func (h *FileHandler) HandleDelete(c *gin.Context) {
	filename := c.Param("filename")
	if err := h.fileService.Delete(filename); errors.Is(err, types.ErrNotFound) {
		c.JSON(http.StatusOK, types.MessageResponse{
			Message: fmt.Sprintf("%s not found", filename),
		})
		return
	}
	c.JSON(http.StatusOK, types.MessageResponse{
		Message: fmt.Sprintf("%s deleted successfully", filename),
	})
}
