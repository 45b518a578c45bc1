package tabular

import (
	"strconv"
	"strings"
)

// Infer 为数据集的每一列推断存储类型，返回有序的 schema 描述
// 解码器已给出类型提示的列直接采用提示，其余列按文本值启发式推断：
// 全部非空值为 true/false 字面量时取 boolean；剥离非数字标点后全部可解析时取
// integer 或 float；否则回退 text。全空列取 text。
func Infer(ds *Dataset) []ColumnType {
	schema := make([]ColumnType, len(ds.Columns))
	for i, name := range ds.Columns {
		kind := Kind("")
		if i < len(ds.Hints) {
			kind = ds.Hints[i]
		}
		if kind == "" {
			kind = inferColumn(ds.Rows, i)
		}
		schema[i] = ColumnType{Name: name, Kind: kind}
	}
	return schema
}

func inferColumn(rows [][]Value, col int) Kind {
	sawValue := false
	allBool := true
	allNumeric := true
	sawFloat := false

	for _, row := range rows {
		if col >= len(row) || row[col].Null {
			continue
		}
		sawValue = true
		s := row[col].S

		if allBool && !isBoolLiteral(s) {
			allBool = false
		}
		if allNumeric {
			stripped := stripNonNumeric(s)
			isInt, isFloat := parseNumeric(stripped)
			if !isInt && !isFloat {
				allNumeric = false
			} else if isFloat {
				sawFloat = true
			}
		}
		if !allBool && !allNumeric {
			break
		}
	}

	if !sawValue {
		return KindText
	}
	if allBool {
		return KindBoolean
	}
	if allNumeric {
		if sawFloat {
			return KindFloat
		}
		return KindInteger
	}
	return KindText
}

func isBoolLiteral(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "false":
		return true
	}
	return false
}

// stripNonNumeric 剥离除数字、'.'、'-' 之外的字符
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseNumeric 判断剥离后的文本是整数还是浮点数
func parseNumeric(s string) (isInt bool, isFloat bool) {
	if s == "" {
		return false, false
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true, false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false, true
	}
	return false, false
}
