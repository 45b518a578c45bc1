package model

import (
	"testing"
)

// ========== AppendDatasetID 测试 ==========

func TestAppendDatasetID_New(t *testing.T) {
	r := DatasetRelation{}

	if ok := r.AppendDatasetID("ds-1"); !ok {
		t.Error("AppendDatasetID() = false, want true for new id")
	}
	if len(r.DatasetIDs) != 1 || r.DatasetIDs[0] != "ds-1" {
		t.Errorf("DatasetIDs = %v, want [ds-1]", r.DatasetIDs)
	}
}

func TestAppendDatasetID_Duplicate(t *testing.T) {
	r := DatasetRelation{DatasetIDs: StringList{"ds-1", "ds-2"}}

	if ok := r.AppendDatasetID("ds-1"); ok {
		t.Error("AppendDatasetID() = true, want false for duplicate id")
	}
	if len(r.DatasetIDs) != 2 {
		t.Errorf("len(DatasetIDs) = %d, want 2 (append must be idempotent)", len(r.DatasetIDs))
	}
}

func TestAppendDatasetID_PreservesOrder(t *testing.T) {
	r := DatasetRelation{}
	for _, id := range []string{"c", "a", "b", "a"} {
		r.AppendDatasetID(id)
	}

	want := []string{"c", "a", "b"}
	if len(r.DatasetIDs) != len(want) {
		t.Fatalf("len(DatasetIDs) = %d, want %d", len(r.DatasetIDs), len(want))
	}
	for i, id := range want {
		if r.DatasetIDs[i] != id {
			t.Errorf("DatasetIDs[%d] = %q, want %q", i, r.DatasetIDs[i], id)
		}
	}
}

// ========== StringList 编解码测试 ==========

func TestStringList_Value(t *testing.T) {
	var l StringList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value() unexpected error: %v", err)
	}
	if v != "[]" {
		t.Errorf("Value() = %v, want \"[]\" for nil list", v)
	}
}

func TestStringList_Scan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["a","b"]`)); err != nil {
		t.Fatalf("Scan() unexpected error: %v", err)
	}
	if len(l) != 2 || l[0] != "a" || l[1] != "b" {
		t.Errorf("Scan() = %v, want [a b]", l)
	}
}
