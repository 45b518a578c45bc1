// Package chart 提供图表建议生成、执行与收藏
package chart

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/llm"
	"github.com/graphmates/graphmates-api/internal/model"
	"github.com/graphmates/graphmates-api/internal/repository"
)

// Service 图表服务
type Service struct {
	repos    *repository.Repositories
	llm      llm.Client
	cache    *redis.Client
	cacheTTL int
}

// NewService 创建图表服务
// cache 为 nil 时不启用执行结果缓存
func NewService(repos *repository.Repositories, client llm.Client, cache *redis.Client, cacheTTL int) *Service {
	return &Service{
		repos:    repos,
		llm:      client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GenerateInput 图表建议生成请求
type GenerateInput struct {
	Name string        `json:"name"`
	Data []interface{} `json:"data"`
}

// Generate 将数据集描述发给 LLM，解析图表建议列表并落库
// 每条建议附带生成的 id 返回；成功后用 name 更新数据集关系的名称
func (s *Service) Generate(ctx context.Context, input *GenerateInput) ([]model.JSON, error) {
	if input.Name == "" || input.Data == nil {
		return nil, apierr.ErrInvalidRequest.WithMessage("Missing required fields: name or data")
	}
	relationID := relationIDFrom(input.Data)
	if relationID == "" {
		return nil, apierr.ErrInvalidRequest.WithMessage("Missing dataset_relation_id in the data array")
	}

	query, err := json.Marshal(input.Data)
	if err != nil {
		return nil, apierr.ErrInvalidRequest.Wrap(err)
	}

	answer, err := s.llm.Chat(ctx, llm.PurposeChart, string(query))
	if err != nil {
		return nil, apierr.ErrLLMAPI.Wrap(err)
	}
	if answer == "" {
		return nil, apierr.ErrChartProcessing.WithMessage("No answer received from LLM API")
	}

	suggestions, ok := parseSuggestions(answer)
	if !ok {
		return nil, apierr.ErrInvalidResponse.WithMessage("Failed to parse LLM response")
	}

	enhanced := make([]model.JSON, 0, len(suggestions))
	for _, suggestion := range suggestions {
		chart := chartFromSuggestion(suggestion, relationID)
		if err := s.repos.Chart.Create(chart); err != nil {
			return nil, apierr.ErrChartProcessing.Wrap(err)
		}

		out := make(model.JSON, len(suggestion)+1)
		for k, v := range suggestion {
			out[k] = v
		}
		out["id"] = chart.ID
		enhanced = append(enhanced, out)
	}

	if len(enhanced) == 0 {
		return nil, apierr.ErrChartProcessing.WithMessage("No valid charts were processed")
	}

	s.renameRelation(relationID, input.Name)
	return enhanced, nil
}

// parseSuggestions 将回答解析为图表建议列表，失败时先修复再重解
// 修复后仍不是列表的回答被拒绝
func parseSuggestions(answer string) ([]model.JSON, bool) {
	var suggestions []model.JSON
	if !llm.ParseJSON(answer, &suggestions) {
		return nil, false
	}
	return suggestions, true
}

func relationIDFrom(data []interface{}) string {
	if len(data) == 0 {
		return ""
	}
	first, ok := data[0].(map[string]interface{})
	if !ok {
		return ""
	}
	id, _ := first["dataset_relation_id"].(string)
	return id
}

func chartFromSuggestion(suggestion model.JSON, relationID string) *model.Chart {
	chartType, _ := suggestion["chart_type"].(string)
	sqlQuery, _ := suggestion["sql_query"].(string)
	llmPrompt, _ := suggestion["llm_prompt"].(string)
	parameters, _ := suggestion["parameters"].(map[string]interface{})

	if sqlQuery != "" {
		if err := checkQuery(sqlQuery); err != nil {
			// 建议的 SQL 可疑时照常保存，仅记录告警
			log.Printf("suspect chart query for relation %s: %v", relationID, err)
		}
	}

	return &model.Chart{
		ChartType:         chartType,
		Parameters:        model.JSON(parameters),
		SQLQuery:          sqlQuery,
		LLMPrompt:         llmPrompt,
		DatasetRelationID: relationID,
	}
}

// renameRelation 成功生成后更新关系名称，关系缺失时静默跳过
func (s *Service) renameRelation(relationID, name string) {
	relation, err := s.repos.Relation.GetByID(relationID)
	if err != nil {
		return
	}
	relation.Name = name
	if err := s.repos.Relation.Update(relation); err != nil {
		log.Printf("failed to rename relation %s: %v", relationID, err)
	}
}
