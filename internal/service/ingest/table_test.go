package ingest

import (
	"testing"

	"github.com/graphmates/graphmates-api/internal/tabular"
)

// ========== sqlTypeFor 测试 ==========

func TestSQLTypeFor(t *testing.T) {
	cases := []struct {
		kind tabular.Kind
		want string
	}{
		{tabular.KindInteger, "BIGINT"},
		{tabular.KindFloat, "DOUBLE PRECISION"},
		{tabular.KindBoolean, "BOOLEAN"},
		{tabular.KindTimestamp, "TIMESTAMP"},
		{tabular.KindText, "VARCHAR(255)"},
	}

	for _, c := range cases {
		if got := sqlTypeFor(c.kind); got != c.want {
			t.Errorf("sqlTypeFor(%q) = %q, want %q", c.kind, got, c.want)
		}
	}
}

// ========== insertValue 测试 ==========

func TestInsertValue_MissingBecomesNil(t *testing.T) {
	row := []tabular.Value{tabular.NullValue()}

	if got := insertValue(tabular.KindInteger, row, 0); got != nil {
		t.Errorf("insertValue() = %v, want nil", got)
	}
}

func TestInsertValue_BooleanInsertedAsBool(t *testing.T) {
	row := []tabular.Value{tabular.NewValue("TRUE")}

	got := insertValue(tabular.KindBoolean, row, 0)

	if b, ok := got.(bool); !ok || !b {
		t.Errorf("insertValue() = %v (%T), want true", got, got)
	}
}

func TestInsertValue_NumericInsertedAsText(t *testing.T) {
	// 非布尔值一律以文本写入，与推断出的数值类型无关
	row := []tabular.Value{tabular.NewValue("42")}

	got := insertValue(tabular.KindInteger, row, 0)

	if s, ok := got.(string); !ok || s != "42" {
		t.Errorf("insertValue() = %v (%T), want \"42\"", got, got)
	}
}

func TestInsertValue_ShortRowBecomesNil(t *testing.T) {
	row := []tabular.Value{tabular.NewValue("x")}

	if got := insertValue(tabular.KindText, row, 5); got != nil {
		t.Errorf("insertValue() = %v, want nil", got)
	}
}

// ========== quoteIdent 测试 ==========

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("col"); got != `"col"` {
		t.Errorf("quoteIdent() = %q", got)
	}
	if got := quoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("quoteIdent() = %q", got)
	}
}
