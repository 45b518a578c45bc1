package ingest

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/tabular"
)

// insertBatchRows 单条 INSERT 携带的最大行数
const insertBatchRows = 500

// Materializer 将推断后的数据集落成持久表
type Materializer struct {
	db *gorm.DB
}

// NewMaterializer 创建表物化器
func NewMaterializer(db *gorm.DB) *Materializer {
	return &Materializer{db: db}
}

// Materialize 创建表并批量写入全部行，返回最终的 schema（可能前置合成主键列）
// 数据集已有名为 id 的列时以其推断类型作主键，否则合成文本主键，取行的位置索引
// 写入阶段失败时尽力删表后返回错误
func (m *Materializer) Materialize(ctx context.Context, tableName string, schema []tabular.ColumnType, rows [][]tabular.Value) ([]tabular.ColumnType, error) {
	syntheticID := true
	for _, col := range schema {
		if col.Name == "id" {
			syntheticID = false
			break
		}
	}

	final := schema
	if syntheticID {
		final = append([]tabular.ColumnType{{Name: "id", Kind: tabular.KindText}}, schema...)
	}

	if err := m.createTable(ctx, tableName, final, syntheticID); err != nil {
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	if err := m.populate(ctx, tableName, final, rows, syntheticID); err != nil {
		m.dropTable(ctx, tableName)
		return nil, fmt.Errorf("failed to populate table %s: %w", tableName, err)
	}

	return final, nil
}

func (m *Materializer) createTable(ctx context.Context, tableName string, schema []tabular.ColumnType, syntheticID bool) error {
	defs := make([]string, 0, len(schema))
	for _, col := range schema {
		sqlType := sqlTypeFor(col.Kind)
		if col.Name == "id" && syntheticID {
			sqlType = "VARCHAR(36)"
		}
		def := fmt.Sprintf("%s %s", quoteIdent(col.Name), sqlType)
		if col.Name == "id" {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(tableName), strings.Join(defs, ", "))
	return m.db.WithContext(ctx).Exec(stmt).Error
}

func (m *Materializer) populate(ctx context.Context, tableName string, schema []tabular.ColumnType, rows [][]tabular.Value, syntheticID bool) error {
	if len(rows) == 0 {
		return nil
	}

	names := make([]string, len(schema))
	for i, col := range schema {
		names[i] = quoteIdent(col.Name)
	}
	columnList := strings.Join(names, ", ")
	rowPlaceholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(schema)), ", ") + ")"

	for start := 0; start < len(rows); start += insertBatchRows {
		end := start + insertBatchRows
		if end > len(rows) {
			end = len(rows)
		}

		placeholders := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*len(schema))
		for rowIdx := start; rowIdx < end; rowIdx++ {
			placeholders = append(placeholders, rowPlaceholder)

			row := rows[rowIdx]
			offset := 0
			if syntheticID {
				args = append(args, strconv.Itoa(rowIdx))
				offset = 1
			}
			for colIdx := offset; colIdx < len(schema); colIdx++ {
				args = append(args, insertValue(schema[colIdx].Kind, row, colIdx-offset))
			}
		}

		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", quoteIdent(tableName), columnList, strings.Join(placeholders, ", "))
		if err := m.db.WithContext(ctx).Exec(stmt, args...).Error; err != nil {
			return err
		}
	}
	return nil
}

func (m *Materializer) dropTable(ctx context.Context, tableName string) {
	stmt := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(tableName))
	if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		log.Printf("failed to drop table %s: %v", tableName, err)
	}
}

// insertValue 入库值转换：布尔列写真布尔，空值写 NULL，其余一律写文本
func insertValue(kind tabular.Kind, row []tabular.Value, col int) interface{} {
	if col >= len(row) || row[col].Null {
		return nil
	}
	if kind == tabular.KindBoolean {
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(row[col].S)))
		if err == nil {
			return b
		}
	}
	return row[col].S
}

// sqlTypeFor 存储类型到 SQL 列类型的映射
func sqlTypeFor(kind tabular.Kind) string {
	switch kind {
	case tabular.KindInteger:
		return "BIGINT"
	case tabular.KindFloat:
		return "DOUBLE PRECISION"
	case tabular.KindBoolean:
		return "BOOLEAN"
	case tabular.KindTimestamp:
		return "TIMESTAMP"
	default:
		return "VARCHAR(255)"
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
