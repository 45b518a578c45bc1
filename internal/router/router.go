// Package router 设置 HTTP 路由
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/graphmates/graphmates-api/internal/config"
	"github.com/graphmates/graphmates-api/internal/handler"
	"github.com/graphmates/graphmates-api/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, cfg *config.Config) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AuthMiddleware(&cfg.Auth))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 文件上传与入库
		v1.POST("/files/upload", h.File.Upload)

		// 外部数据库接入
		v1.POST("/database/analyze", h.Database.Analyze)

		// 数据集与图表
		ds := v1.Group("/dataset")
		{
			ds.PUT("/update", h.Dataset.Update)
			ds.POST("/chart", h.Chart.Generate)
			ds.POST("/generate-data", h.Chart.Execute)
			ds.POST("/chart/bookmark", h.Chart.Bookmark)
			ds.POST("/chart/unbookmark", h.Chart.Unbookmark)
			ds.POST("/chart/bookmark/details", h.Chart.BookmarkDetails)
		}
	}

	return r
}
