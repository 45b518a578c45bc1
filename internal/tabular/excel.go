package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DecodeExcel 使用 DuckDB 内存库解析 Excel 内容为数据集
// st_read 需要 spatial 扩展，首次调用时加载
func DecodeExcel(ctx context.Context, data []byte, ext string) (*Dataset, error) {
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "INSTALL spatial; LOAD spatial;"); err != nil {
		return nil, fmt.Errorf("failed to load spatial extension: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM st_read('%s')", strings.ReplaceAll(tmp.Name(), "'", "''"))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read excel file: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}

	hints := make([]Kind, len(columns))
	for i, ct := range columnTypes {
		hints[i] = kindFromDuckDBType(ct.DatabaseTypeName())
	}

	var dataRows [][]Value
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make([]Value, len(columns))
		for i, v := range values {
			row[i] = valueFromDuckDB(v)
		}
		dataRows = append(dataRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return &Dataset{
		Columns: columns,
		Rows:    dataRows,
		Hints:   hints,
	}, nil
}

// kindFromDuckDBType 将 DuckDB 列类型映射到存储类型提示
func kindFromDuckDBType(typeName string) Kind {
	switch strings.ToUpper(typeName) {
	case "TINYINT", "SMALLINT", "INTEGER", "BIGINT", "HUGEINT", "UTINYINT", "USMALLINT", "UINTEGER", "UBIGINT":
		return KindInteger
	case "FLOAT", "DOUBLE", "DECIMAL", "REAL":
		return KindFloat
	case "BOOLEAN":
		return KindBoolean
	case "DATE", "TIMESTAMP", "TIMESTAMP WITH TIME ZONE", "TIMESTAMPTZ":
		return KindTimestamp
	default:
		return ""
	}
}

// valueFromDuckDB 将扫描出的原生值转换为单元格
func valueFromDuckDB(v interface{}) Value {
	switch val := v.(type) {
	case nil:
		return NullValue()
	case time.Time:
		return TimeValue(val)
	case bool:
		return NewValue(strconv.FormatBool(val))
	case []byte:
		return NewValue(string(val))
	case string:
		if val == "" {
			return NullValue()
		}
		return NewValue(val)
	case int64:
		return NewValue(strconv.FormatInt(val, 10))
	case int32:
		return NewValue(strconv.FormatInt(int64(val), 10))
	case float64:
		return NewValue(strconv.FormatFloat(val, 'f', -1, 64))
	case float32:
		return NewValue(strconv.FormatFloat(float64(val), 'f', -1, 32))
	default:
		return NewValue(fmt.Sprintf("%v", val))
	}
}
