// Package llm 回答解析单元测试
package llm

import (
	"testing"
)

// ========== ParseJSON 测试 ==========

func TestParseJSON_ValidObject(t *testing.T) {
	var parsed map[string]interface{}

	if !ParseJSON(`{"a": 1}`, &parsed) {
		t.Fatal("valid object rejected")
	}
	if _, ok := parsed["a"]; !ok {
		t.Errorf("parsed = %v", parsed)
	}
}

func TestParseJSON_RepairsTrailingCommas(t *testing.T) {
	var parsed []map[string]interface{}

	if !ParseJSON(`[{"chart_type": "bar", "sql_query": "SELECT 1",},]`, &parsed) {
		t.Fatal("repairable list rejected")
	}
	if len(parsed) != 1 || parsed[0]["chart_type"] != "bar" {
		t.Errorf("parsed = %v", parsed)
	}
}

func TestParseJSON_Hopeless(t *testing.T) {
	var parsed map[string]interface{}

	if ParseJSON("not json at all {{{", &parsed) {
		t.Error("garbage accepted as JSON")
	}
}

func TestParseJSON_TypeMismatchRejected(t *testing.T) {
	// 期望列表时对象不被接受
	var parsed []map[string]interface{}

	if ParseJSON(`{"a": 1}`, &parsed) {
		t.Error("object accepted where list expected")
	}
}
