package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

// ========== Error 测试 ==========

func TestError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrDatabaseTransaction.Wrap(cause)

	if err.Code != "database_transaction_error" {
		t.Errorf("Code = %q, want database_transaction_error", err.Code)
	}
	if err.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", err.Status)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match errors.Is on the cause")
	}
}

func TestError_WrapDoesNotMutate(t *testing.T) {
	_ = ErrChartNotFound.Wrap(errors.New("boom"))

	if ErrChartNotFound.Err != nil {
		t.Error("Wrap() must not mutate the sentinel error")
	}
}

func TestError_IsMatchesCopies(t *testing.T) {
	wrapped := ErrLLMAPI.Wrap(errors.New("timeout"))
	if !errors.Is(wrapped, ErrLLMAPI) {
		t.Error("Wrap copy should match its sentinel via errors.Is")
	}

	reworded := ErrInvalidResponse.WithMessage("Failed to parse LLM response")
	if !errors.Is(reworded, ErrInvalidResponse) {
		t.Error("WithMessage copy should match its sentinel via errors.Is")
	}
}

func TestError_IsRejectsOtherCodes(t *testing.T) {
	if errors.Is(ErrLLMAPI.Wrap(errors.New("boom")), ErrDatabaseQuery) {
		t.Error("errors.Is should not match sentinels with different codes")
	}
	if errors.Is(ErrLLMAPI, errors.New("llm_api_error")) {
		t.Error("errors.Is should not match plain errors")
	}
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrChartNotFound)

	apiErr, ok := As(wrapped)
	if !ok {
		t.Fatal("As() should find *Error in chain")
	}
	if apiErr.Code != "chart_not_found" {
		t.Errorf("Code = %q, want chart_not_found", apiErr.Code)
	}
}

func TestAs_PlainError(t *testing.T) {
	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() should return false for non-API errors")
	}
}
