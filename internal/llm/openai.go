package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/graphmates/graphmates-api/internal/config"
)

// OpenAIClient 基于 eino ChatModel 的 OpenAI 兼容客户端
type OpenAIClient struct {
	model ecomodel.ChatModel
}

// NewOpenAIClient 创建 OpenAI 客户端
func NewOpenAIClient(ctx context.Context, cfg *config.OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required for openai provider")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &OpenAIClient{model: model}, nil
}

// Chat 发送单轮对话请求
func (c *OpenAIClient) Chat(ctx context.Context, _ Purpose, query string) (string, error) {
	msg, err := c.model.Generate(ctx, []*schema.Message{
		schema.UserMessage(query),
	})
	if err != nil {
		return "", fmt.Errorf("chat model generate failed: %w", err)
	}
	return msg.Content, nil
}
