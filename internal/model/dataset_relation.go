package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatasetRelation 数据集关系
// 将一个用户的若干数据集分组，作为保存图表的作用域
type DatasetRelation struct {
	ID         string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID     string     `json:"user_id" gorm:"type:varchar(255);not null;index"`
	Name       string     `json:"name" gorm:"type:varchar(255)"`
	DatasetIDs StringList `json:"dataset_ids" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BeforeCreate GORM 钩子，创建前生成 UUID
func (r *DatasetRelation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// AppendDatasetID 追加数据集 ID，已存在时不做任何修改
// 返回是否实际追加（列表语义为保持插入顺序的集合）
func (r *DatasetRelation) AppendDatasetID(id string) bool {
	for _, existing := range r.DatasetIDs {
		if existing == id {
			return false
		}
	}
	r.DatasetIDs = append(r.DatasetIDs, id)
	return true
}

// TableName 指定表名
func (DatasetRelation) TableName() string {
	return "graphmates_dataset_relations"
}
