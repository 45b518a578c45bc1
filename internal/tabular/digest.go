package tabular

import "strings"

// digestSampleRows 摘要包含的最大样本行数
const digestSampleRows = 10

// Digest 生成数据集的文本摘要，作为元数据生成的 LLM 输入
// 首行为 ";" 连接的列名，随后最多 10 行样本数据；
// 空值渲染为字面量 "N/A"，时间值渲染为日期（YYYY-MM-DD）
func Digest(ds *Dataset) string {
	var b strings.Builder
	b.WriteString(strings.Join(ds.Columns, ";"))

	limit := len(ds.Rows)
	if limit > digestSampleRows {
		limit = digestSampleRows
	}

	for _, row := range ds.Rows[:limit] {
		b.WriteString("\n")
		fields := make([]string, len(ds.Columns))
		for i := range ds.Columns {
			fields[i] = digestField(row, i)
		}
		b.WriteString(strings.Join(fields, ";"))
	}
	return b.String()
}

func digestField(row []Value, i int) string {
	if i >= len(row) || row[i].Null {
		return "N/A"
	}
	if row[i].T != nil {
		return row[i].T.Format("2006-01-02")
	}
	return row[i].S
}
