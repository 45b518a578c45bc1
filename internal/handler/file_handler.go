package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/middleware"
	"github.com/graphmates/graphmates-api/internal/service"
	"github.com/graphmates/graphmates-api/internal/service/ingest"
)

// FileHandler 文件上传处理器
type FileHandler struct {
	svc *service.Services
}

// NewFileHandler 创建文件处理器
func NewFileHandler(svc *service.Services) *FileHandler {
	return &FileHandler{svc: svc}
}

// Upload 上传表格文件并入库
// POST /api/v1/files/upload
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		Error(c, apierr.ErrNoFileUploaded)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		Error(c, apierr.ErrNoFileUploaded)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		Error(c, apierr.ErrDatabaseTransaction.WithMessage(err.Error()))
		return
	}

	result, err := h.svc.Ingest.Upload(c.Request.Context(), &ingest.UploadInput{
		FileName:   fileHeader.Filename,
		MimeType:   fileHeader.Header.Get("Content-Type"),
		Content:    content,
		RelationID: c.PostForm("dataset_relation_id"),
		UserID:     middleware.UserID(c),
	})
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
