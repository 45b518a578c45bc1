package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadFile 上传文件记录
// 摄取成功后创建，之后不可变；仅在摄取回滚时连同 blob 一起删除
type UploadFile struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	StorageType string    `json:"storage_type" gorm:"type:varchar(255);not null"`
	Key         string    `json:"key" gorm:"type:varchar(255);not null"` // blob 存储键
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Extension   string    `json:"extension" gorm:"type:varchar(255);not null"`
	MimeType    string    `json:"mime_type" gorm:"type:varchar(255)"`
	Hash        string    `json:"hash" gorm:"type:varchar(255)"` // 原始字节的 sha3-256，用于去重/审计
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate GORM 钩子，创建前生成 UUID
func (f *UploadFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// TableName 指定表名
func (UploadFile) TableName() string {
	return "graphmates_upload_files"
}
