package chart

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/model"
)

// Bookmark 收藏图表
func (s *Service) Bookmark(ctx context.Context, chartID string) error {
	return s.setBookmarked(chartID, true, apierr.ErrBookmark)
}

// Unbookmark 取消收藏
func (s *Service) Unbookmark(ctx context.Context, chartID string) error {
	return s.setBookmarked(chartID, false, apierr.ErrUnbookmark)
}

func (s *Service) setBookmarked(chartID string, bookmarked bool, failure *apierr.Error) error {
	chart, err := s.repos.Chart.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.ErrChartNotFound
		}
		return failure.Wrap(err)
	}

	chart.IsBookmarked = bookmarked
	if err := s.repos.Chart.Update(chart); err != nil {
		return failure.Wrap(err)
	}
	return nil
}

// BookmarkGroup 某个数据集关系下的收藏图表
type BookmarkGroup struct {
	Name   string       `json:"name"`
	Charts []model.JSON `json:"charts"`
}

// BookmarkDetails 列出用户的收藏图表，按数据集关系分组
// 只返回既有名称又有至少一条收藏的关系
func (s *Service) BookmarkDetails(ctx context.Context, userID string) ([]BookmarkGroup, error) {
	relations, err := s.repos.Relation.ListByUser(userID)
	if err != nil {
		return nil, apierr.ErrProcessing.Wrap(err)
	}

	groups := make([]BookmarkGroup, 0)
	for _, relation := range relations {
		if relation.Name == "" {
			continue
		}

		charts, err := s.repos.Chart.ListBookmarkedByRelation(relation.ID)
		if err != nil {
			return nil, apierr.ErrProcessing.Wrap(err)
		}

		if group, ok := groupFor(relation, charts); ok {
			groups = append(groups, group)
		}
	}
	return groups, nil
}

// groupFor 生成某个关系的收藏分组
// 关系没有名称或没有收藏图表时不产出分组
func groupFor(relation *model.DatasetRelation, charts []*model.Chart) (BookmarkGroup, bool) {
	if relation.Name == "" || len(charts) == 0 {
		return BookmarkGroup{}, false
	}

	details := make([]model.JSON, 0, len(charts))
	for _, chart := range charts {
		details = append(details, model.JSON{
			"id":         chart.ID,
			"chart_type": chart.ChartType,
			"sql_query":  chart.SQLQuery,
			"llm_prompt": chart.LLMPrompt,
			"parameters": chart.Parameters,
		})
	}
	return BookmarkGroup{Name: relation.Name, Charts: details}, true
}
