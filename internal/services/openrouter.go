package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"fancychat-backend/internal/config"
)

const (
	// Fixed model identifier; the relay performs no model selection.
	openRouterModel = "openai/gpt-3.5-turbo"

	completionMaxTokens   = 1000
	completionTemperature = 0.7

	// Hard deadline for a single upstream call.
	defaultCompletionTimeout = 30 * time.Second

	// Upstream error bodies are read for diagnostics only; cap how much we pull.
	maxErrorBodyBytes = 64 << 10
)

type OpenRouterService struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	appURL     string
	appName    string
	timeout    time.Duration
}

func NewOpenRouterService(cfg *config.Config) *OpenRouterService {
	return &OpenRouterService{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		baseURL: cfg.OpenRouterBaseURL,
		apiKey:  cfg.OpenRouterAPIKey,
		appURL:  cfg.AppURL,
		appName: cfg.AppName,
		timeout: defaultCompletionTimeout,
	}
}

// ChatCompletion is the distilled upstream result: the generated reply plus
// the usage object relayed opaquely.
type ChatCompletion struct {
	Response string
	Usage    json.RawMessage
}

type openRouterRequest struct {
	Model       string          `json:"model"`
	Messages    json.RawMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openRouterResponse struct {
	Choices json.RawMessage `json:"choices"`
	Usage   json.RawMessage `json:"usage"`
}

type openRouterChoice struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
}

// CreateChatCompletion relays the conversation to OpenRouter and returns the
// first generated choice. messages is forwarded verbatim; individual entries
// are not schema-validated here.
func (s *OpenRouterService) CreateChatCompletion(ctx context.Context, messages json.RawMessage) (*ChatCompletion, error) {
	if s.apiKey == "" {
		return nil, &ConfigError{Message: "OpenRouter API key not configured"}
	}

	payload, err := json.Marshal(openRouterRequest{
		Model:       openRouterModel,
		Messages:    messages,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upstream request: %w", err)
	}

	// The deadline is scoped to this single call; cancel releases the timer on
	// every exit path.
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", s.appURL)
	req.Header.Set("X-Title", s.appName)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, s.timeout)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := "<failed to read error body>"
		if b, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes)); readErr == nil {
			errBody = string(b)
		}
		log.Printf("OpenRouter request failed: status=%d body=%s", resp.StatusCode, errBody)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err, s.timeout)
	}

	var parsed openRouterResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		log.Printf("OpenRouter returned unparseable body: %v", err)
		return nil, &BadResponseError{Message: "Invalid response from AI service"}
	}

	var choices []openRouterChoice
	if parsed.Choices == nil || json.Unmarshal(parsed.Choices, &choices) != nil || len(choices) == 0 {
		return nil, &BadResponseError{Message: "Unexpected response format from AI service"}
	}

	content := choices[0].Message.Content
	if content == "" {
		content = "No response generated"
	}

	return &ChatCompletion{Response: content, Usage: parsed.Usage}, nil
}
