// Package tabular 类型推断单元测试
package tabular

import (
	"testing"
)

func columnDataset(values []string) *Dataset {
	ds := &Dataset{
		Columns: []string{"col"},
		Hints:   make([]Kind, 1),
	}
	for _, v := range values {
		if v == "" {
			ds.Rows = append(ds.Rows, []Value{NullValue()})
			continue
		}
		ds.Rows = append(ds.Rows, []Value{NewValue(v)})
	}
	return ds
}

// ========== Infer 测试 ==========

func TestInfer_IntegerColumn(t *testing.T) {
	schema := Infer(columnDataset([]string{"1", "2", "3"}))

	if schema[0].Kind != KindInteger {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindInteger)
	}
}

func TestInfer_FloatColumn(t *testing.T) {
	schema := Infer(columnDataset([]string{"1.5", "2"}))

	if schema[0].Kind != KindFloat {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindFloat)
	}
}

func TestInfer_MixedColumnFallsBackToText(t *testing.T) {
	schema := Infer(columnDataset([]string{"a", "1"}))

	if schema[0].Kind != KindText {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindText)
	}
}

func TestInfer_AllMissingColumnDefaultsToText(t *testing.T) {
	schema := Infer(columnDataset([]string{"", "", ""}))

	if schema[0].Kind != KindText {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindText)
	}
}

func TestInfer_BooleanColumn(t *testing.T) {
	schema := Infer(columnDataset([]string{"true", "false", "TRUE"}))

	if schema[0].Kind != KindBoolean {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindBoolean)
	}
}

func TestInfer_NumericWithPunctuation(t *testing.T) {
	// 千分位与货币符号剥离后仍视为数值列
	schema := Infer(columnDataset([]string{"$1,200", "$3,400"}))

	if schema[0].Kind != KindInteger {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindInteger)
	}
}

func TestInfer_MissingValuesIgnored(t *testing.T) {
	schema := Infer(columnDataset([]string{"1", "", "3"}))

	if schema[0].Kind != KindInteger {
		t.Errorf("Infer() = %q, want %q", schema[0].Kind, KindInteger)
	}
}

func TestInfer_HintWins(t *testing.T) {
	ds := columnDataset([]string{"1", "2"})
	ds.Hints[0] = KindTimestamp

	schema := Infer(ds)

	if schema[0].Kind != KindTimestamp {
		t.Errorf("Infer() = %q, want hint %q", schema[0].Kind, KindTimestamp)
	}
}

func TestInfer_PreservesColumnOrder(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"b", "a", "c"},
		Rows: [][]Value{
			{NewValue("1"), NewValue("x"), NewValue("2.5")},
		},
		Hints: make([]Kind, 3),
	}

	schema := Infer(ds)

	want := []ColumnType{
		{Name: "b", Kind: KindInteger},
		{Name: "a", Kind: KindText},
		{Name: "c", Kind: KindFloat},
	}
	for i := range want {
		if schema[i] != want[i] {
			t.Errorf("schema[%d] = %+v, want %+v", i, schema[i], want[i])
		}
	}
}
