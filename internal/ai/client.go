//go:generate mockery --name Completer --output ./mocks --outpkg mocks --case=underscore
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"go_flashcard_study/internal/config"
	"go_flashcard_study/internal/middleware"

	"google.golang.org/genai"
)

// Completer は言語モデルを「プロンプト → テキスト」の不透明なエンドポイントとして扱う。
// ストリーミングはせず、1回のブロッキング呼び出しで完結する。
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

var (
	ErrNotConfigured  = errors.New("ai: api key is not configured")
	ErrMissingContent = errors.New("ai: response missing candidate text")
)

// maxErrorBodyBytes はログに残すエラー本文の上限
const maxErrorBodyBytes = 512

// StatusError はエンドポイントが2xx以外を返したことを表します。
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ai: unexpected status %d: %s", e.StatusCode, e.Body)
}

// GeminiClient は genai SDK の Models.GenerateContent を呼び出す Completer 実装です。
type GeminiClient struct {
	model  string
	client *genai.Client // APIキー未設定なら nil
}

// NewGeminiClient は設定値から genai クライアントを組み立てます。httpClient が nil の場合は
// cfg.Timeout をタイムアウトに持つクライアントを生成します。
// APIキーが空でもエラーにはせず、Complete が ErrNotConfigured を返すクライアントになります。
func NewGeminiClient(ctx context.Context, cfg config.AIConfig, httpClient *http.Client) (*GeminiClient, error) {
	c := &GeminiClient{model: cfg.Model}
	if cfg.APIKey == "" {
		return c, nil
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.Endpoint,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai.NewGeminiClient: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	logger := middleware.GetLogger(ctx)

	if c.client == nil {
		return "", ErrNotConfigured
	}

	logger.Debug("Calling language model", "model", c.model, "max_tokens", maxTokens, "prompt_bytes", len(prompt))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		if statusErr := asStatusError(err); statusErr != nil {
			return "", statusErr
		}
		return "", fmt.Errorf("ai.Complete: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrMissingContent
	}
	return text, nil
}

// asStatusError は SDK の APIError を StatusError に詰め替えます。該当しなければ nil。
func asStatusError(err error) *StatusError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{StatusCode: apiErr.Code, Body: truncateUTF8(apiErr.Message, maxErrorBodyBytes)}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &StatusError{StatusCode: apiErrPtr.Code, Body: truncateUTF8(apiErrPtr.Message, maxErrorBodyBytes)}
	}
	return nil
}

// truncateUTF8 は n バイト以内に収まるよう、ルーンの境界で切り詰めます。
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
