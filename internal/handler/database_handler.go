package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/middleware"
	"github.com/graphmates/graphmates-api/internal/service"
	"github.com/graphmates/graphmates-api/internal/service/dbconn"
)

// DatabaseHandler 外部数据库处理器
type DatabaseHandler struct {
	svc *service.Services
}

// NewDatabaseHandler 创建外部数据库处理器
func NewDatabaseHandler(svc *service.Services) *DatabaseHandler {
	return &DatabaseHandler{svc: svc}
}

// Analyze 接入外部数据库表并生成描述
// POST /api/v1/database/analyze
func (h *DatabaseHandler) Analyze(c *gin.Context) {
	var input dbconn.AnalyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, apierr.ErrInvalidRequest)
		return
	}
	if input.UserID == "" {
		input.UserID = middleware.UserID(c)
	}

	result, err := h.svc.DBConn.Analyze(c.Request.Context(), &input)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
