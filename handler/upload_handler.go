package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/b5-ai/study-companion-be/service"
	"github.com/b5-ai/study-companion-be/types"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	fileService *service.FileService
}

func NewUploadHandler(fileService *service.FileService) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
	}
}

// HandleUpload accepts a multipart batch under the "files" field. Each
// file is validated and extracted independently; failures are reported
// in the summary without aborting the rest of the batch.
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.MessageResponse{
			Message: "invalid multipart form",
		})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, types.MessageResponse{
			Message: "no files provided",
		})
		return
	}

	processed, failures := h.fileService.Upload(files)

	message := fmt.Sprintf("%d file(s) processed successfully", processed)
	if len(failures) > 0 {
		message = fmt.Sprintf("%s; %s", message, strings.Join(failures, "; "))
	}
	c.JSON(http.StatusOK, types.MessageResponse{Message: message})
}
