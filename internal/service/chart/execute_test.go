// Package chart 结果重组单元测试
package chart

import (
	"reflect"
	"testing"

	"github.com/graphmates/graphmates-api/internal/model"
)

// ========== reshape 测试 ==========

func TestReshape_RolesAndAdditional(t *testing.T) {
	parameters := model.JSON{
		"value":    "amount",
		"series":   "category",
		"category": nil,
	}
	columns := []string{"amount", "category", "extra"}
	rows := []map[string]interface{}{
		{"amount": int64(10), "category": "A", "extra": "x"},
	}

	got := reshape(parameters, columns, rows)

	headers := got["headers"].(model.JSON)
	if headers["value"] != "amount" || headers["series"] != "category" {
		t.Errorf("headers = %v", headers)
	}
	if headers["category"] != nil {
		t.Errorf("unmapped role header = %v, want nil", headers["category"])
	}

	data := got["data"].(model.JSON)
	if !reflect.DeepEqual(data["value"], []interface{}{int64(10)}) {
		t.Errorf("data.value = %v", data["value"])
	}
	if !reflect.DeepEqual(data["series"], []interface{}{"A"}) {
		t.Errorf("data.series = %v", data["series"])
	}
	if !reflect.DeepEqual(data["category"], []interface{}{}) {
		t.Errorf("data.category = %v, want empty list", data["category"])
	}

	additional := data["additional"].([]interface{})
	if len(additional) != 1 {
		t.Fatalf("len(additional) = %d, want 1", len(additional))
	}
	extra := additional[0].(model.JSON)
	if extra["name"] != "extra" || !reflect.DeepEqual(extra["values"], []interface{}{"x"}) {
		t.Errorf("additional[0] = %v", extra)
	}
}

func TestReshape_AdditionalFollowsColumnOrder(t *testing.T) {
	parameters := model.JSON{"value": "a"}
	columns := []string{"a", "c", "b"}
	rows := []map[string]interface{}{
		{"a": int64(1), "b": int64(2), "c": int64(3)},
	}

	got := reshape(parameters, columns, rows)

	additional := got["data"].(model.JSON)["additional"].([]interface{})
	if len(additional) != 2 {
		t.Fatalf("len(additional) = %d, want 2", len(additional))
	}
	if additional[0].(model.JSON)["name"] != "c" || additional[1].(model.JSON)["name"] != "b" {
		t.Errorf("additional order = [%v, %v], want [c, b]",
			additional[0].(model.JSON)["name"], additional[1].(model.JSON)["name"])
	}
}

func TestReshape_AllColumnsUsedLeavesAdditionalEmpty(t *testing.T) {
	parameters := model.JSON{"value": "a", "series": "b"}
	columns := []string{"a", "b"}
	rows := []map[string]interface{}{
		{"a": int64(1), "b": "x"},
	}

	got := reshape(parameters, columns, rows)

	additional := got["data"].(model.JSON)["additional"].([]interface{})
	if len(additional) != 0 {
		t.Errorf("additional = %v, want empty", additional)
	}
}

// ========== buildResult 测试 ==========

func TestBuildResult_EmptyRowsReturnsEmptyList(t *testing.T) {
	parameters := model.JSON{"value": "amount"}

	got := buildResult(parameters, []string{"amount"}, nil)

	// 空结果集返回空列表，而不是带空数组的对象
	list, ok := got.([]interface{})
	if !ok {
		t.Fatalf("buildResult() = %T, want empty list", got)
	}
	if len(list) != 0 {
		t.Errorf("buildResult() = %v, want []", list)
	}
}

func TestBuildResult_NonEmptyRowsReshaped(t *testing.T) {
	parameters := model.JSON{"value": "amount"}
	rows := []map[string]interface{}{{"amount": int64(1)}}

	got := buildResult(parameters, []string{"amount"}, rows)

	if _, ok := got.(model.JSON); !ok {
		t.Fatalf("buildResult() = %T, want reshaped object", got)
	}
}

// ========== normalizeValue 测试 ==========

func TestNormalizeValue(t *testing.T) {
	if got := normalizeValue([]byte("abc")); got != "abc" {
		t.Errorf("[]byte = %v", got)
	}
	if got := normalizeValue(int64(5)); got != int64(5) {
		t.Errorf("int64 = %v", got)
	}
	if got := normalizeValue(nil); got != nil {
		t.Errorf("nil = %v", got)
	}
	// 非基本类型退化为文本
	if got := normalizeValue([]int{1, 2}); got != "[1 2]" {
		t.Errorf("slice = %v", got)
	}
}

// ========== relationIDFrom 测试 ==========

func TestRelationIDFrom(t *testing.T) {
	data := []interface{}{
		map[string]interface{}{"dataset_relation_id": "rel-1"},
	}
	if got := relationIDFrom(data); got != "rel-1" {
		t.Errorf("relationIDFrom() = %q", got)
	}

	if got := relationIDFrom(nil); got != "" {
		t.Errorf("relationIDFrom(nil) = %q, want empty", got)
	}
	if got := relationIDFrom([]interface{}{map[string]interface{}{}}); got != "" {
		t.Errorf("relationIDFrom(no id) = %q, want empty", got)
	}
}

// ========== parseSuggestions 测试 ==========

func TestParseSuggestions_ValidList(t *testing.T) {
	suggestions, ok := parseSuggestions(`[{"chart_type": "bar", "sql_query": "SELECT 1"}]`)

	if !ok {
		t.Fatal("valid list rejected")
	}
	if len(suggestions) != 1 || suggestions[0]["chart_type"] != "bar" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestParseSuggestions_RepairsTrailingCommas(t *testing.T) {
	suggestions, ok := parseSuggestions(`[{"chart_type": "bar", "sql_query": "SELECT 1",},]`)

	if !ok {
		t.Fatal("repairable list rejected")
	}
	if len(suggestions) != 1 || suggestions[0]["sql_query"] != "SELECT 1" {
		t.Errorf("suggestions = %v", suggestions)
	}
}

func TestParseSuggestions_ObjectRejected(t *testing.T) {
	if _, ok := parseSuggestions(`{"chart_type": "bar"}`); ok {
		t.Error("non-list answer accepted")
	}
}

func TestParseSuggestions_GarbageRejected(t *testing.T) {
	if _, ok := parseSuggestions("I cannot produce charts for this data."); ok {
		t.Error("prose answer accepted")
	}
}

// ========== checkQuery 测试 ==========

func TestCheckQuery(t *testing.T) {
	if err := checkQuery("SELECT a, b FROM t WHERE a > 1"); err != nil {
		t.Errorf("valid select rejected: %v", err)
	}
	if err := checkQuery("DROP TABLE t"); err == nil {
		t.Error("non-select accepted")
	}
	if err := checkQuery("SELECT 1; SELECT 2"); err == nil {
		t.Error("multiple statements accepted")
	}
	if err := checkQuery("not sql at all"); err == nil {
		t.Error("unparseable query accepted")
	}
}
