// Package service 聚合全部业务服务
package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/graphmates/graphmates-api/internal/config"
	"github.com/graphmates/graphmates-api/internal/llm"
	"github.com/graphmates/graphmates-api/internal/repository"
	"github.com/graphmates/graphmates-api/internal/service/chart"
	"github.com/graphmates/graphmates-api/internal/service/dataset"
	"github.com/graphmates/graphmates-api/internal/service/dbconn"
	"github.com/graphmates/graphmates-api/internal/service/ingest"
	"github.com/graphmates/graphmates-api/internal/storage"
)

// Services 服务集合
type Services struct {
	Ingest  *ingest.Service
	Dataset *dataset.Service
	Chart   *chart.Service
	DBConn  *dbconn.Service

	Config *config.Config
	LLM    llm.Client
}

// NewServices 创建所有服务
// cache 为 nil 时禁用图表结果缓存
func NewServices(ctx context.Context, cfg *config.Config, repos *repository.Repositories, cache *redis.Client) (*Services, error) {
	llmClient, err := llm.NewClient(ctx, &cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	store, storageType, err := storage.NewFromConfig(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	enricher := dataset.NewEnricher(llmClient)

	return &Services{
		Ingest:  ingest.NewService(repos.DB, store, storageType, enricher, cfg.Database.Dialect()),
		Dataset: dataset.NewService(repos.Dataset, enricher),
		Chart:   chart.NewService(repos, llmClient, cache, cfg.Redis.CacheTTL),
		DBConn:  dbconn.NewService(repos, llmClient),
		Config:  cfg,
		LLM:     llmClient,
	}, nil
}
