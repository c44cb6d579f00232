package services

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the fallback text-completion path used when Gemini
// is unavailable. Same prompt in, raw text out.
type OpenRouterService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

type openRouterService struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewOpenRouterService(apiKey, model string) OpenRouterService {
	return &openRouterService{
		client: resty.New(),
		apiKey: apiKey,
		model:  model,
	}
}

func (s *openRouterService) Configured() bool {
	return s.apiKey != ""
}

func (s *openRouterService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("openrouter api key not configured")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}

	return text, nil
}
