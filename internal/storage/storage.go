// Package storage 提供上传文件的 blob 存储
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/graphmates/graphmates-api/internal/config"
)

// Storage 文件存储接口
// key 为路径形式的存储键（如 upload_files/<uuid>.csv），由调用方生成
type Storage interface {
	// Save 在 key 下保存文件内容
	Save(ctx context.Context, key string, data []byte) error
	// Get 获取文件内容
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete 删除文件
	Delete(ctx context.Context, key string) error
}

// Type 存储类型
type Type string

const (
	TypeLocal Type = "local"
	TypeMinIO Type = "minio"
)

// NewFromConfig 根据配置创建存储
func NewFromConfig(cfg *config.StorageConfig) (Storage, Type, error) {
	switch Type(cfg.Type) {
	case TypeLocal, "":
		s, err := NewLocalStorage(cfg.Local.BasePath)
		return s, TypeLocal, err
	case TypeMinIO:
		s, err := NewMinIOStorage(&MinIOConfig{
			Endpoint:   cfg.MinIO.Endpoint,
			AccessKey:  cfg.MinIO.AccessKey,
			SecretKey:  cfg.MinIO.SecretKey,
			BucketName: cfg.MinIO.Bucket,
			UseSSL:     cfg.MinIO.UseSSL,
		})
		return s, TypeMinIO, err
	default:
		return nil, "", fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
