// Package tabular 提供表格文件的解析、类型推断与摘要生成
package tabular

import "time"

// Kind 列的存储类型
type Kind string

const (
	KindText      Kind = "text"
	KindInteger   Kind = "integer"
	KindFloat     Kind = "float"
	KindBoolean   Kind = "boolean"
	KindTimestamp Kind = "timestamp"
)

// Value 单元格值
// 时间值同时携带 T（用于摘要的日期渲染）与 S（用于入库的完整文本）
type Value struct {
	S    string
	T    *time.Time
	Null bool
}

// String 渲染单元格文本，空值返回空串
func (v Value) String() string {
	if v.Null {
		return ""
	}
	return v.S
}

// ColumnType 有序 schema 描述中的一项
type ColumnType struct {
	Name string
	Kind Kind
}

// Dataset 解码后的矩形数据集
// Hints 为解码器已知的列类型（如 Excel 的原生类型），未知的列为空串，由推断器决定
type Dataset struct {
	Columns []string
	Rows    [][]Value
	Hints   []Kind
}

// NewValue 创建文本单元格
func NewValue(s string) Value {
	return Value{S: s}
}

// NullValue 创建空单元格
func NullValue() Value {
	return Value{Null: true}
}

// TimeValue 创建时间单元格
func TimeValue(t time.Time) Value {
	return Value{S: t.Format("2006-01-02 15:04:05"), T: &t}
}
