package chart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/model"
)

// chartResultKey 执行结果缓存键前缀
const chartResultKey = "chart_result:"

// Execute 执行图表存储的 SQL 并按角色重组结果
// 参数映射中的每个角色（value/series/category）输出对应列的按行取值；
// 角色未映射时输出空列表与 null 表头；未被任何角色引用的列按表的自然列序
// 进入 additional。空结果集直接返回空列表而非空对象
func (s *Service) Execute(ctx context.Context, chartID string) (interface{}, error) {
	chart, err := s.repos.Chart.GetByID(chartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrChartNotFound
		}
		return nil, apierr.ErrChartExecution.Wrap(err)
	}

	if cached, ok := s.cacheGet(ctx, chartID); ok {
		return cached, nil
	}

	columns, rows, err := s.runQuery(ctx, chart.SQLQuery)
	if err != nil {
		return nil, apierr.ErrDatabaseQuery.WithMessage(fmt.Sprintf("Error executing query: %s", err))
	}

	result := buildResult(chart.Parameters, columns, rows)

	s.cacheSet(ctx, chartID, result)
	return result, nil
}

// runQuery 原样执行查询，返回列名与逐行的列名到值映射
// 非基本类型的值退化为文本表示
func (s *Service) runQuery(ctx context.Context, sqlQuery string) ([]string, []map[string]interface{}, error) {
	dbRows, err := s.repos.DB.WithContext(ctx).Raw(sqlQuery).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer dbRows.Close()

	columns, err := dbRows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var rows []map[string]interface{}
	for dbRows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := dbRows.Scan(pointers...); err != nil {
			return nil, nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			row[column] = normalizeValue(values[i])
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, nil, err
	}
	return columns, rows, nil
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil, string, bool, int64, float64:
		return val
	case []byte:
		return string(val)
	case sql.RawBytes:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// buildResult 空结果集直接返回空列表而非空对象，否则按角色重组
func buildResult(parameters model.JSON, columns []string, rows []map[string]interface{}) interface{} {
	if len(rows) == 0 {
		return []interface{}{}
	}
	return reshape(parameters, columns, rows)
}

// reshape 将结果集映射到固定的图表参数结构
func reshape(parameters model.JSON, columns []string, rows []map[string]interface{}) model.JSON {
	headers := model.JSON{}
	data := model.JSON{
		"value":      []interface{}{},
		"series":     []interface{}{},
		"category":   []interface{}{},
		"additional": []interface{}{},
	}

	used := make(map[string]bool)
	for role, mapped := range parameters {
		column, ok := mapped.(string)
		if !ok || column == "" {
			data[role] = []interface{}{}
			headers[role] = nil
			continue
		}

		values := make([]interface{}, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[column])
		}
		data[role] = values
		headers[role] = column
		used[column] = true
	}

	additional := make([]interface{}, 0)
	for _, column := range columns {
		if used[column] {
			continue
		}
		values := make([]interface{}, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[column])
		}
		additional = append(additional, model.JSON{"name": column, "values": values})
	}
	data["additional"] = additional

	return model.JSON{"headers": headers, "data": data}
}

// cacheGet 读取执行结果缓存；物化表建成后不再变化，结果可安全复用
func (s *Service) cacheGet(ctx context.Context, chartID string) (interface{}, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, chartResultKey+chartID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("chart cache read failed: %v", err)
		}
		return nil, false
	}

	var result interface{}
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, false
	}
	return result, true
}

func (s *Service) cacheSet(ctx context.Context, chartID string, result interface{}) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := time.Duration(s.cacheTTL) * time.Second
	if err := s.cache.Set(ctx, chartResultKey+chartID, payload, ttl).Err(); err != nil {
		log.Printf("chart cache write failed: %v", err)
	}
}
