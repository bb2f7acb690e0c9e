// Package groq implements the tutor gateway port against a Groq-style
// OpenAI-compatible chat-completions endpoint.
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ai-tutor-service/internal/config"
	"ai-tutor-service/internal/core/domain"
	ports "ai-tutor-service/internal/core/ports/output"
)

const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 200
	defaultTopP        = 0.8
)

type tutorClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	enabled bool
}

// NewTutorClient creates a new tutor gateway client adapter
func NewTutorClient(cfg *config.TutorConfig) ports.TutorClient {
	if !cfg.Enabled {
		return &tutorClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &tutorClient{
		baseURL: cfg.URL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		enabled: true,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *tutorClient) IsAvailable() bool {
	return c.enabled
}

// Chat completions wire structures
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *tutorClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.enabled {
		return "", domain.ErrTutorNotAvailable
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		TopP:        defaultTopP,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	reqURL := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call tutor gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tutor gateway returned status %d: %w", resp.StatusCode, domain.ErrTutorNotAvailable)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("tutor gateway error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("tutor gateway returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
