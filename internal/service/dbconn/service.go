// Package dbconn 提供外部数据库表的接入与元数据分析
package dbconn

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/llm"
	"github.com/graphmates/graphmates-api/internal/model"
	"github.com/graphmates/graphmates-api/internal/repository"
)

// sampleRowLimit 采样行数，与文件摘要保持一致
const sampleRowLimit = 10

var fencedJSON = regexp.MustCompile("(?s)```json\n(.*?)```")

// Service 外部数据库分析服务
type Service struct {
	repos *repository.Repositories
	llm   llm.Client
}

// NewService 创建外部数据库服务
func NewService(repos *repository.Repositories, client llm.Client) *Service {
	return &Service{repos: repos, llm: client}
}

// AnalyzeInput 外部表分析请求
type AnalyzeInput struct {
	UserID    string `json:"user_id"`
	DBType    string `json:"db_type"`
	DBName    string `json:"db_name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Host      string `json:"host"`
	Port      string `json:"port"`
	TableName string `json:"table_name"`
}

// Analyze 连接外部数据库，采样目标表并生成数据集描述
// 连接信息会持久化，但不落 DatasetDesc：描述不关联任何上传文件
func (s *Service) Analyze(ctx context.Context, input *AnalyzeInput) (model.JSON, error) {
	dbType := strings.ToUpper(input.DBType)
	if input.TableName == "" {
		return nil, apierr.ErrInvalidRequest
	}

	dialector, err := dialectorFor(dbType, input)
	if err != nil {
		return nil, err
	}

	connection := &model.DatabaseConnection{
		UserID:     input.UserID,
		DBType:     dbType,
		DBName:     input.DBName,
		Username:   input.Username,
		Password:   input.Password,
		Host:       input.Host,
		Port:       input.Port,
		TableName_: input.TableName,
	}
	if err := s.repos.Connection.Create(connection); err != nil {
		return nil, apierr.ErrDatabaseTransaction.Wrap(err)
	}

	digest, err := sampleTable(ctx, dialector, input.TableName)
	if err != nil {
		return nil, apierr.ErrDatabaseQuery.WithMessage(fmt.Sprintf("Error analyzing table: %s", err))
	}

	answer, err := s.llm.Chat(ctx, llm.PurposeMetadata, digest)
	if err != nil {
		return nil, apierr.ErrLLMAPI.Wrap(err)
	}

	return describeTable(answer, input.TableName), nil
}

func dialectorFor(dbType string, input *AnalyzeInput) (gorm.Dialector, error) {
	switch dbType {
	case "POSTGRESQL":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
			input.Host, input.Port, input.Username, input.Password, input.DBName)
		return postgres.Open(dsn), nil
	case "MYSQL":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
			input.Username, input.Password, input.Host, input.Port, input.DBName)
		return mysql.Open(dsn), nil
	default:
		return nil, apierr.ErrUnsupportedDBType
	}
}

// sampleTable 采样目标表的前若干行并生成摘要文本
func sampleTable(ctx context.Context, dialector gorm.Dialector, tableName string) (string, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return "", err
	}
	defer sqlDB.Close()

	query := fmt.Sprintf("SELECT * FROM %s LIMIT %d", tableName, sampleRowLimit)
	rows, err := db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return "", err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, ";"))

	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return "", err
		}

		fields := make([]string, len(columns))
		for i, v := range values {
			fields[i] = renderSample(v)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(fields, ";"))
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderSample(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// describeTable 从回答中提取描述 JSON，解析失败时退化为最小描述
func describeTable(answer, tableName string) model.JSON {
	match := fencedJSON.FindStringSubmatch(answer)
	if match == nil {
		return model.JSON{"datasetName": tableName}
	}

	var parsed model.JSON
	if !llm.ParseJSON(match[1], &parsed) {
		return model.JSON{}
	}
	parsed["datasetName"] = tableName
	return parsed
}
