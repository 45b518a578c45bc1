// Package dataset 提供数据集描述的生成与维护
package dataset

import (
	"context"
	"log"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/llm"
	"github.com/graphmates/graphmates-api/internal/model"
)

// fencedJSON 匹配回答文本中的 ```json 围栏块
var fencedJSON = regexp.MustCompile("(?s)```json\n(.*?)```")

// Enricher 调用 LLM 生成数据集描述并落库
type Enricher struct {
	llm llm.Client
}

// NewEnricher 创建元数据生成器
func NewEnricher(client llm.Client) *Enricher {
	return &Enricher{llm: client}
}

// Enrich 以数据集摘要为 query 调用 LLM，解析描述并持久化
// 回答中无 JSON 块时退化为仅含 datasetName 的最小描述；解析失败时落空描述，
// 元数据缺失不算失败。解析成功时用表的实际列类型覆盖 LLM 声明的列类型。
// 返回值带 datasetId 键
func (e *Enricher) Enrich(ctx context.Context, tx *gorm.DB, digest string, file *model.UploadFile, tableName, userID string) (model.JSON, error) {
	answer, err := e.llm.Chat(ctx, llm.PurposeMetadata, digest)
	if err != nil {
		return nil, apierr.ErrLLMAPI.Wrap(err)
	}

	extracted := e.extract(tx, answer, file, tableName)

	desc := &model.DatasetDesc{
		FileID: file.ID,
		UserID: userID,
		Data:   extracted,
	}
	if err := tx.Create(desc).Error; err != nil {
		return nil, apierr.ErrDatabaseTransaction.Wrap(err)
	}

	extracted["datasetId"] = desc.ID
	return extracted, nil
}

func (e *Enricher) extract(tx *gorm.DB, answer string, file *model.UploadFile, tableName string) model.JSON {
	datasetName := strings.TrimSuffix(file.Name, "."+file.Extension)

	match := fencedJSON.FindStringSubmatch(answer)
	if match == nil {
		return model.JSON{"datasetName": datasetName}
	}

	parsed, ok := parseJSONObject(match[1])
	if !ok {
		log.Printf("failed to parse metadata response for file %s", file.ID)
		return model.JSON{}
	}

	parsed["datasetName"] = datasetName
	applyStoredColumnTypes(tx, parsed, tableName)
	return parsed
}

// parseJSONObject 解析 JSON 对象，首次失败时尝试修复后重解
func parseJSONObject(s string) (model.JSON, bool) {
	var parsed model.JSON
	if !llm.ParseJSON(s, &parsed) {
		return nil, false
	}
	return parsed, true
}

// applyStoredColumnTypes 用库内实际列类型覆盖描述中的 columnDataType
func applyStoredColumnTypes(tx *gorm.DB, parsed model.JSON, tableName string) {
	columnsVal, ok := parsed["columns"].([]interface{})
	if !ok {
		return
	}

	columnTypes, err := tx.Migrator().ColumnTypes(tableName)
	if err != nil {
		log.Printf("failed to introspect table %s: %v", tableName, err)
		return
	}

	stored := make(map[string]string, len(columnTypes))
	for _, ct := range columnTypes {
		stored[ct.Name()] = ct.DatabaseTypeName()
	}

	for _, c := range columnsVal {
		column, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := column["columnName"].(string)
		if storedType, ok := stored[name]; ok {
			column["columnDataType"] = storedType
		}
	}
}
