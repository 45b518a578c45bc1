package ingest

import (
	"context"
	"io"
	"testing"
)

// recordingStore 记录 Delete 调用的存储桩
type recordingStore struct {
	deletedKey   string
	deleteCtxErr error
}

func (s *recordingStore) Save(ctx context.Context, key string, data []byte) error { return nil }

func (s *recordingStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, nil
}

func (s *recordingStore) Delete(ctx context.Context, key string) error {
	s.deletedKey = key
	s.deleteCtxErr = ctx.Err()
	return nil
}

// ========== cleanupBlob 测试 ==========

func TestCleanupBlob_UsesLiveContext(t *testing.T) {
	store := &recordingStore{}
	s := &Service{store: store}

	// 即使触发清理的请求已被取消，删除也要在一个存活的上下文里执行
	s.cleanupBlob("upload_files/abc.csv")

	if store.deletedKey != "upload_files/abc.csv" {
		t.Errorf("deleted key = %q", store.deletedKey)
	}
	if store.deleteCtxErr != nil {
		t.Errorf("cleanup context already done: %v", store.deleteCtxErr)
	}
}
