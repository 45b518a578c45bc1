package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// DecodeCSV 解析 CSV 内容为数据集
// 首行作为列名，短行补空值，长行报错
func DecodeCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	// 行宽允许不一致，自行对齐
	reader.FieldsPerRecord = -1

	var rows [][]Value
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if len(record) > len(columns) {
			return nil, fmt.Errorf("csv row %d has %d fields, expected at most %d", len(rows)+2, len(record), len(columns))
		}

		row := make([]Value, len(columns))
		for i := range columns {
			if i >= len(record) || record[i] == "" {
				row[i] = NullValue()
				continue
			}
			row[i] = NewValue(record[i])
		}
		rows = append(rows, row)
	}

	return &Dataset{
		Columns: columns,
		Rows:    rows,
		Hints:   make([]Kind, len(columns)),
	}, nil
}
