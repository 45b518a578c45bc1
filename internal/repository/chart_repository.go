package repository

import (
	"github.com/graphmates/graphmates-api/internal/model"
	"gorm.io/gorm"
)

// ChartRepository 图表仓库
type ChartRepository struct {
	db *gorm.DB
}

// NewChartRepository 创建图表仓库
func NewChartRepository(db *gorm.DB) *ChartRepository {
	return &ChartRepository{db: db}
}

// Create 创建图表
func (r *ChartRepository) Create(chart *model.Chart) error {
	return r.db.Create(chart).Error
}

// GetByID 根据ID获取图表
func (r *ChartRepository) GetByID(id string) (*model.Chart, error) {
	var chart model.Chart
	err := r.db.Where("id = ?", id).First(&chart).Error
	if err != nil {
		return nil, err
	}
	return &chart, nil
}

// Update 更新图表
func (r *ChartRepository) Update(chart *model.Chart) error {
	return r.db.Save(chart).Error
}

// ListBookmarkedByRelation 列出某个数据集关系下已收藏的图表
func (r *ChartRepository) ListBookmarkedByRelation(relationID string) ([]*model.Chart, error) {
	var charts []*model.Chart
	err := r.db.Where("dataset_relation_id = ? AND is_bookmarked = ?", relationID, true).Find(&charts).Error
	if err != nil {
		return nil, err
	}
	return charts, nil
}
