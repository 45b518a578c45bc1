package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/graphmates/graphmates-api/internal/config"
)

// LLMOpsClient LLMOps 聊天端点客户端
// 元数据与图表用途各自使用独立的应用令牌
type LLMOpsClient struct {
	baseURL       string
	metadataToken string
	chartToken    string
	user          string
	httpClient    *http.Client
}

// NewLLMOpsClient 创建 LLMOps 客户端
func NewLLMOpsClient(cfg *config.LLMOpsConfig) *LLMOpsClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120
	}
	return &LLMOpsClient{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		metadataToken: cfg.MetadataToken,
		chartToken:    cfg.ChartToken,
		user:          cfg.User,
		httpClient:    &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

type chatMessageRequest struct {
	Inputs         map[string]interface{} `json:"inputs"`
	Query          string                 `json:"query"`
	ResponseMode   string                 `json:"response_mode"`
	ConversationID string                 `json:"conversation_id"`
	User           string                 `json:"user"`
	Files          []interface{}          `json:"files"`
}

type chatMessageResponse struct {
	Answer string `json:"answer"`
}

// Chat 调用 /v1/chat-messages 端点，失败时重试一次
func (c *LLMOpsClient) Chat(ctx context.Context, purpose Purpose, query string) (string, error) {
	token := c.metadataToken
	if purpose == PurposeChart {
		token = c.chartToken
	}
	if token == "" {
		return "", fmt.Errorf("llmops token not configured for purpose: %s", purpose)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			log.Printf("LLMOps request failed, retrying: %v", lastErr)
		}
		answer, err := c.doChat(ctx, token, query)
		if err == nil {
			return answer, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

func (c *LLMOpsClient) doChat(ctx context.Context, token, query string) (string, error) {
	body, err := json.Marshal(&chatMessageRequest{
		Inputs:         map[string]interface{}{},
		Query:          query,
		ResponseMode:   "blocking",
		ConversationID: "",
		User:           c.user,
		Files:          []interface{}{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat-messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llmops request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llmops returned status %d: %s", resp.StatusCode, string(data))
	}

	var out chatMessageResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Answer, nil
}
