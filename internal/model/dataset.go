package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatasetDesc 数据集描述
// 引用一条 UploadFile 记录，data 保存 LLM 生成并与实际表结构对齐的描述
type DatasetDesc struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	FileID    string    `json:"file_id" gorm:"type:varchar(36);not null;index"`
	UserID    string    `json:"user_id" gorm:"type:varchar(255);not null"`
	Data      JSON      `json:"data" gorm:"type:json"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate GORM 钩子，创建前生成 UUID
func (d *DatasetDesc) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName 指定表名
func (DatasetDesc) TableName() string {
	return "graphmates_dataset_desc"
}
