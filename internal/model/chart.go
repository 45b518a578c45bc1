package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chart 保存的图表定义
// parameters 为角色名到列名的映射（value/series/category，可为 null）
type Chart struct {
	ID                string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ChartType         string    `json:"chart_type" gorm:"type:varchar(100);not null"`
	Parameters        JSON      `json:"parameters" gorm:"type:json"`
	SQLQuery          string    `json:"sql_query" gorm:"type:text;column:sql_query"`
	LLMPrompt         string    `json:"llm_prompt" gorm:"type:text;column:llm_prompt"`
	DatasetRelationID string    `json:"dataset_relation_id" gorm:"type:varchar(36);index"`
	IsBookmarked      bool      `json:"is_bookmarked" gorm:"not null;default:false"`
	CreatedAt         time.Time `json:"created_at"`
}

// BeforeCreate GORM 钩子，创建前生成 UUID
func (c *Chart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName 指定表名
func (Chart) TableName() string {
	return "graphmates_charts"
}
