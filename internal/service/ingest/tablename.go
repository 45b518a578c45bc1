// Package ingest 实现表格文件的入库编排：解码、类型推断、建表与落库
package ingest

import (
	"regexp"
	"time"
)

// 数据库表名长度上限（按 MySQL 的 64 字符取齐）
const tableNameMaxLength = 64

var invalidIdentifierChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// GenerateTableName 由基础名生成唯一表名
// 非法字符段替换为单个下划线，追加时间戳后缀；超长时仅截断前缀，后缀保持完整
func GenerateTableName(base string, now time.Time) string {
	suffix := now.Format("20060102_150405")
	sanitized := invalidIdentifierChars.ReplaceAllString(base, "_")

	name := sanitized + "_" + suffix
	if len(name) > tableNameMaxLength {
		trim := tableNameMaxLength - len(suffix) - 1
		name = sanitized[:trim] + "_" + suffix
	}
	return name
}
