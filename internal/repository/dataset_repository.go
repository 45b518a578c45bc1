package repository

import (
	"github.com/graphmates/graphmates-api/internal/model"
	"gorm.io/gorm"
)

// DatasetRepository 数据集描述仓库
type DatasetRepository struct {
	db *gorm.DB
}

// NewDatasetRepository 创建数据集描述仓库
func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create 创建数据集描述
func (r *DatasetRepository) Create(desc *model.DatasetDesc) error {
	return r.db.Create(desc).Error
}

// GetByID 根据ID获取数据集描述
func (r *DatasetRepository) GetByID(id string) (*model.DatasetDesc, error) {
	var desc model.DatasetDesc
	err := r.db.Where("id = ?", id).First(&desc).Error
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

// Update 更新数据集描述
func (r *DatasetRepository) Update(desc *model.DatasetDesc) error {
	return r.db.Save(desc).Error
}
