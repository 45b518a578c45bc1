package tabular

import (
	"strings"
	"testing"
)

// ========== DecodeCSV 测试 ==========

func TestDecodeCSV_Basic(t *testing.T) {
	input := "name,score\nalice,90\nbob,85\n"

	ds, err := DecodeCSV(strings.NewReader(input))

	if err != nil {
		t.Fatalf("DecodeCSV() unexpected error: %v", err)
	}
	if len(ds.Columns) != 2 || ds.Columns[0] != "name" || ds.Columns[1] != "score" {
		t.Errorf("Columns = %v, want [name score]", ds.Columns)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(ds.Rows))
	}
	if ds.Rows[0][0].S != "alice" || ds.Rows[1][1].S != "85" {
		t.Errorf("unexpected row values: %+v", ds.Rows)
	}
}

func TestDecodeCSV_EmptyFieldBecomesNull(t *testing.T) {
	input := "a,b\n1,\n"

	ds, err := DecodeCSV(strings.NewReader(input))

	if err != nil {
		t.Fatalf("DecodeCSV() unexpected error: %v", err)
	}
	if !ds.Rows[0][1].Null {
		t.Errorf("empty field should be null, got %+v", ds.Rows[0][1])
	}
}

func TestDecodeCSV_ShortRowPadded(t *testing.T) {
	input := "a,b,c\n1,2\n"

	ds, err := DecodeCSV(strings.NewReader(input))

	if err != nil {
		t.Fatalf("DecodeCSV() unexpected error: %v", err)
	}
	if len(ds.Rows[0]) != 3 {
		t.Fatalf("row width = %d, want 3", len(ds.Rows[0]))
	}
	if !ds.Rows[0][2].Null {
		t.Errorf("missing trailing field should be null")
	}
}

func TestDecodeCSV_EmptyFile(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))

	if err == nil {
		t.Error("DecodeCSV() should fail on empty input")
	}
}

func TestDecodeCSV_HeaderOnly(t *testing.T) {
	ds, err := DecodeCSV(strings.NewReader("a,b\n"))

	if err != nil {
		t.Fatalf("DecodeCSV() unexpected error: %v", err)
	}
	if len(ds.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(ds.Rows))
	}
}

func TestDecodeCSV_QuotedFields(t *testing.T) {
	input := "name,desc\n\"smith, john\",\"line1\nline2\"\n"

	ds, err := DecodeCSV(strings.NewReader(input))

	if err != nil {
		t.Fatalf("DecodeCSV() unexpected error: %v", err)
	}
	if ds.Rows[0][0].S != "smith, john" {
		t.Errorf("quoted field = %q", ds.Rows[0][0].S)
	}
	if ds.Rows[0][1].S != "line1\nline2" {
		t.Errorf("multiline field = %q", ds.Rows[0][1].S)
	}
}
