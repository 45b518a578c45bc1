// Package llm 提供大模型调用客户端
package llm

import (
	"context"
	"fmt"

	"github.com/graphmates/graphmates-api/internal/config"
)

// Purpose 调用用途，决定使用哪个应用令牌
type Purpose string

const (
	// PurposeMetadata 数据集元数据生成
	PurposeMetadata Purpose = "metadata"
	// PurposeChart 图表建议生成
	PurposeChart Purpose = "chart"
)

// Client LLM 客户端接口
type Client interface {
	// Chat 发送 query 并返回模型的完整回答文本
	Chat(ctx context.Context, purpose Purpose, query string) (string, error)
}

// NewClient 根据配置创建 LLM 客户端
func NewClient(ctx context.Context, cfg *config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "llmops", "":
		return NewLLMOpsClient(&cfg.LLMOps), nil
	case "openai":
		return NewOpenAIClient(ctx, &cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
