package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func newQwenImpl(cfg Config) IQwen {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Model returns the configured model name
func (q *qwenImpl) Model() string {
	return q.model
}

// GenerateContent sends a generation request to the Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := q.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: call API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("qwen: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qwen: API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var wireResp openAIResponse
	if err := json.Unmarshal(respBody, &wireResp); err != nil {
		return nil, fmt.Errorf("qwen: unmarshal response: %w", err)
	}

	return q.transformResponse(&wireResp)
}

func (q *qwenImpl) transformRequest(req *Request) *openAIRequest {
	wire := &openAIRequest{
		Model:       q.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != nil {
		wire.Messages = append(wire.Messages, openAIMessage{
			Role:    "system",
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		wire.Messages = append(wire.Messages, openAIMessage{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}

	return wire
}

func (q *qwenImpl) transformResponse(wire *openAIResponse) (*Response, error) {
	if len(wire.Choices) == 0 {
		return nil, fmt.Errorf("qwen: empty response, no choices returned")
	}

	choice := wire.Choices[0]
	resp := &Response{
		Content: Content{
			Role:  "assistant",
			Parts: []Part{{Text: choice.Message.Content}},
		},
		Usage: &Usage{
			InputTokens:  wire.Usage.PromptTokens,
			OutputTokens: wire.Usage.CompletionTokens,
			TotalTokens:  wire.Usage.TotalTokens,
		},
	}
	return resp, nil
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		texts = append(texts, p.Text)
	}
	return strings.Join(texts, "\n")
}
