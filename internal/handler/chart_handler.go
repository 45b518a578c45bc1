package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/middleware"
	"github.com/graphmates/graphmates-api/internal/service"
	"github.com/graphmates/graphmates-api/internal/service/chart"
)

// ChartHandler 图表处理器
type ChartHandler struct {
	svc *service.Services
}

// NewChartHandler 创建图表处理器
func NewChartHandler(svc *service.Services) *ChartHandler {
	return &ChartHandler{svc: svc}
}

// chartIDRequest 携带图表标识的请求体
type chartIDRequest struct {
	ID string `json:"id"`
}

// Generate 生成图表建议
// POST /api/v1/dataset/chart
func (h *ChartHandler) Generate(c *gin.Context) {
	var input chart.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Error(c, apierr.ErrInvalidRequest.WithMessage("Missing required fields: name or data"))
		return
	}

	suggestions, err := h.svc.Chart.Generate(c.Request.Context(), &input)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}

// Execute 执行图表查询并返回重组结果
// POST /api/v1/dataset/generate-data
func (h *ChartHandler) Execute(c *gin.Context) {
	var req chartIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		Error(c, apierr.ErrInvalidRequest)
		return
	}

	result, err := h.svc.Chart.Execute(c.Request.Context(), req.ID)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Bookmark 收藏图表
// POST /api/v1/dataset/chart/bookmark
func (h *ChartHandler) Bookmark(c *gin.Context) {
	var req chartIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		Error(c, apierr.ErrInvalidRequest)
		return
	}

	if err := h.svc.Chart.Bookmark(c.Request.Context(), req.ID); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chart bookmarked successfully"})
}

// Unbookmark 取消收藏
// POST /api/v1/dataset/chart/unbookmark
func (h *ChartHandler) Unbookmark(c *gin.Context) {
	var req chartIDRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		Error(c, apierr.ErrInvalidRequest)
		return
	}

	if err := h.svc.Chart.Unbookmark(c.Request.Context(), req.ID); err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chart unbookmarked successfully"})
}

// BookmarkDetails 按数据集关系列出收藏图表
// POST /api/v1/dataset/chart/bookmark/details
func (h *ChartHandler) BookmarkDetails(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		// 请求未带 user_id 时回退到认证得到的用户
		req.UserID = middleware.UserID(c)
		if req.UserID == "" {
			Error(c, apierr.ErrInvalidRequest)
			return
		}
	}

	groups, err := h.svc.Chart.BookmarkDetails(c.Request.Context(), req.UserID)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}
