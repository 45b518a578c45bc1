package dataset

import (
	"context"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/model"
	"github.com/graphmates/graphmates-api/internal/repository"
)

// Service 数据集描述维护服务
type Service struct {
	repo     *repository.DatasetRepository
	Enricher *Enricher
}

// NewService 创建数据集服务
func NewService(repo *repository.DatasetRepository, enricher *Enricher) *Service {
	return &Service{repo: repo, Enricher: enricher}
}

// ColumnUpdate 单列描述更新项
// 指针字段区分「缺字段」与「空字符串」：空描述是合法输入
type ColumnUpdate struct {
	ColumnName            *string `json:"columnName"`
	ColumnDescription     *string `json:"columnDescription"`
	ColumnDataDescription *string `json:"columnDataDescription"`
}

// UpdateInput 描述更新请求
type UpdateInput struct {
	DatasetID          string         `json:"datasetId"`
	DatasetDescription string         `json:"datasetDescription"`
	Columns            []ColumnUpdate `json:"columns"`
}

// validateUpdate 校验请求字段是否齐全，不限制字段取值
func validateUpdate(input *UpdateInput) error {
	if input.DatasetID == "" || input.Columns == nil {
		return apierr.ErrInvalidRequest
	}
	for _, col := range input.Columns {
		if col.ColumnName == nil || col.ColumnDescription == nil || col.ColumnDataDescription == nil {
			return apierr.ErrInvalidColumns
		}
	}
	return nil
}

// Update 整体替换数据集描述的列映射
// 每列必须带 columnName、columnDescription、columnDataDescription
func (s *Service) Update(ctx context.Context, input *UpdateInput) error {
	if err := validateUpdate(input); err != nil {
		return err
	}

	desc, err := s.repo.GetByID(input.DatasetID)
	if err != nil {
		return apierr.ErrDatasetDescNotFound
	}

	datasetDescription := input.DatasetDescription
	if datasetDescription == "" {
		datasetDescription = "Dataset description"
	}

	columns := make(map[string]interface{}, len(input.Columns))
	for _, col := range input.Columns {
		columns[*col.ColumnName] = map[string]interface{}{
			"description":     *col.ColumnDescription,
			"dataDescription": *col.ColumnDataDescription,
		}
	}

	desc.Data = model.JSON{
		"datasetDescription": datasetDescription,
		"columns":            columns,
	}
	if err := s.repo.Update(desc); err != nil {
		return apierr.ErrDatasetUpdate.Wrap(err)
	}
	return nil
}
