package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/service"
	"github.com/graphmates/graphmates-api/internal/service/dataset"
)

// DatasetHandler 数据集描述处理器
type DatasetHandler struct {
	svc *service.Services
}

// NewDatasetHandler 创建数据集处理器
func NewDatasetHandler(svc *service.Services) *DatasetHandler {
	return &DatasetHandler{svc: svc}
}

// Update 整体替换数据集描述
// PUT /api/v1/dataset/update
func (h *DatasetHandler) Update(c *gin.Context) {
	var input dataset.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, apierr.ErrInvalidRequest)
		return
	}

	if err := h.svc.Dataset.Update(c.Request.Context(), &input); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data Updated",
		"status":  "success",
	})
}
