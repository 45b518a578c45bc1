// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/graphmates/graphmates-api/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	File     *FileHandler
	Dataset  *DatasetHandler
	Chart    *ChartHandler
	Database *DatabaseHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		File:     NewFileHandler(svc),
		Dataset:  NewDatasetHandler(svc),
		Chart:    NewChartHandler(svc),
		Database: NewDatabaseHandler(svc),
	}
}
