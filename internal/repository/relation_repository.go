package repository

import (
	"github.com/graphmates/graphmates-api/internal/model"
	"gorm.io/gorm"
)

// RelationRepository 数据集关系仓库
type RelationRepository struct {
	db *gorm.DB
}

// NewRelationRepository 创建数据集关系仓库
func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// Create 创建数据集关系
func (r *RelationRepository) Create(relation *model.DatasetRelation) error {
	return r.db.Create(relation).Error
}

// GetByID 根据ID获取数据集关系
func (r *RelationRepository) GetByID(id string) (*model.DatasetRelation, error) {
	var relation model.DatasetRelation
	err := r.db.Where("id = ?", id).First(&relation).Error
	if err != nil {
		return nil, err
	}
	return &relation, nil
}

// ListByUser 列出用户的所有数据集关系
func (r *RelationRepository) ListByUser(userID string) ([]*model.DatasetRelation, error) {
	var relations []*model.DatasetRelation
	err := r.db.Where("user_id = ?", userID).Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

// Update 更新数据集关系
func (r *RelationRepository) Update(relation *model.DatasetRelation) error {
	return r.db.Save(relation).Error
}
