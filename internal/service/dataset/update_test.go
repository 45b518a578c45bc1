package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/graphmates/graphmates-api/internal/apierr"
)

// ========== Update 校验测试 ==========

func str(s string) *string { return &s }

func TestUpdate_MissingDatasetID(t *testing.T) {
	s := NewService(nil, nil)

	err := s.Update(context.Background(), &UpdateInput{
		Columns: []ColumnUpdate{{ColumnName: str("a"), ColumnDescription: str("d"), ColumnDataDescription: str("dd")}},
	})

	if !errors.Is(err, apierr.ErrInvalidRequest) {
		t.Errorf("err = %v, want invalid_request", err)
	}
}

func TestUpdate_MissingColumns(t *testing.T) {
	s := NewService(nil, nil)

	err := s.Update(context.Background(), &UpdateInput{DatasetID: "d1"})

	if !errors.Is(err, apierr.ErrInvalidRequest) {
		t.Errorf("err = %v, want invalid_request", err)
	}
}

func TestValidateUpdate_AbsentField(t *testing.T) {
	err := validateUpdate(&UpdateInput{
		DatasetID: "d1",
		Columns: []ColumnUpdate{
			{ColumnName: str("a"), ColumnDescription: str("d")}, // 缺 columnDataDescription
		},
	})

	if !errors.Is(err, apierr.ErrInvalidColumns) {
		t.Errorf("err = %v, want invalid_description", err)
	}
}

func TestValidateUpdate_EmptyStringsAccepted(t *testing.T) {
	err := validateUpdate(&UpdateInput{
		DatasetID: "d1",
		Columns: []ColumnUpdate{
			{ColumnName: str("a"), ColumnDescription: str(""), ColumnDataDescription: str("")},
		},
	})

	if err != nil {
		t.Errorf("err = %v, empty descriptions should pass validation", err)
	}
}
