// Package apierr 提供带稳定错误码的 API 错误类型
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error API 错误
// Code 为稳定的错误码字符串，Status 为对应的 HTTP 状态码
type Error struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error 实现 error 接口
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap 返回底层错误
func (e *Error) Unwrap() error { return e.Err }

// Is 按错误码匹配，使 Wrap/WithMessage 的副本仍能命中哨兵错误
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New 创建 API 错误
func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

// Wrap 复制错误并附加底层原因
func (e *Error) Wrap(err error) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: e.Message, Err: err}
}

// WithMessage 复制错误并替换消息
func (e *Error) WithMessage(message string) *Error {
	return &Error{Status: e.Status, Code: e.Code, Message: message}
}

// As 提取错误链中的 *Error
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// 错误码与 HTTP 状态码对应关系
var (
	ErrNoFileUploaded      = New(http.StatusBadRequest, "no_file_uploaded", "Please upload your file.")
	ErrUnsupportedFileType = New(http.StatusUnsupportedMediaType, "unsupported_file_type", "File type not allowed.")
	ErrDatasetDescNotFound = New(http.StatusNotFound, "dataset_description_not_found", "Dataset description not found.")
	ErrDatabaseTransaction = New(http.StatusInternalServerError, "database_transaction_error", "A database transaction error occurred.")
	ErrChartProcessing     = New(http.StatusInternalServerError, "chart_processing_error", "Failed to process chart request.")
	ErrInvalidResponse     = New(http.StatusInternalServerError, "invalid_response_format", "The response from the API could not be parsed as JSON.")
	ErrInvalidRequest      = New(http.StatusBadRequest, "invalid_request", "Missing required fields.")
	ErrLLMAPI              = New(http.StatusInternalServerError, "llm_api_error", "Error from LLM API")
	ErrDatasetUpdate       = New(http.StatusInternalServerError, "update_failed", "Failed to update dataset description.")
	ErrInvalidColumns      = New(http.StatusBadRequest, "invalid_description", "Invalid columns format. Each column must include columnName, columnDescription, and columnDataDescription.")
	ErrChartNotFound       = New(http.StatusNotFound, "chart_not_found", "Chart with specified ID not found.")
	ErrDatabaseQuery       = New(http.StatusInternalServerError, "database_error", "Error executing query.")
	ErrChartExecution      = New(http.StatusInternalServerError, "execution_error", "Error processing request.")
	ErrBookmark            = New(http.StatusInternalServerError, "bookmark_error", "Error processing request.")
	ErrUnbookmark          = New(http.StatusInternalServerError, "unbookmark_error", "Error processing request.")
	ErrProcessing          = New(http.StatusInternalServerError, "processing_error", "Error processing request.")
	ErrUnsupportedDBType   = New(http.StatusBadRequest, "unsupported_db_type", "Database type not supported.")
)
