package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/apierr"
)

// Error 按错误类型输出稳定的错误码响应
// 未分类的错误以通用处理错误兜底
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}

	if ae, ok := apierr.As(err); ok {
		c.JSON(ae.Status, gin.H{"error": ae.Code, "message": ae.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "processing_error",
		"message": "Error processing request: " + err.Error(),
	})
}
