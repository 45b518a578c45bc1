package tabular

import (
	"strings"
	"testing"
	"time"
)

// ========== Digest 测试 ==========

func TestDigest_HeaderAndRows(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"name", "age"},
		Rows: [][]Value{
			{NewValue("alice"), NewValue("30")},
			{NewValue("bob"), NullValue()},
		},
	}

	got := Digest(ds)
	want := "name;age\nalice;30\nbob;N/A"

	if got != want {
		t.Errorf("Digest() = %q, want %q", got, want)
	}
}

func TestDigest_TimestampRenderedAsDate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	ds := &Dataset{
		Columns: []string{"created"},
		Rows: [][]Value{
			{TimeValue(ts)},
		},
	}

	got := Digest(ds)

	if !strings.Contains(got, "2024-03-15") {
		t.Errorf("Digest() = %q, want date-only rendering", got)
	}
	if strings.Contains(got, "10:30") {
		t.Errorf("Digest() = %q, should not contain time of day", got)
	}
}

func TestDigest_CapsAtTenRows(t *testing.T) {
	ds := &Dataset{Columns: []string{"n"}}
	for i := 0; i < 25; i++ {
		ds.Rows = append(ds.Rows, []Value{NewValue("x")})
	}

	got := Digest(ds)
	lines := strings.Split(got, "\n")

	// 表头 + 10 行样本
	if len(lines) != 11 {
		t.Errorf("Digest() has %d lines, want 11", len(lines))
	}
}

func TestDigest_EmptyDataset(t *testing.T) {
	ds := &Dataset{Columns: []string{"a", "b"}}

	got := Digest(ds)

	if got != "a;b" {
		t.Errorf("Digest() = %q, want header only", got)
	}
}
