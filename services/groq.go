package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// GroqClient is a minimal client for Groq's OpenAI-compatible chat
// completions endpoint.
type GroqClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewGroqClient(apiKey string) *GroqClient {
	return &GroqClient{
		baseURL: groqBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewGroqClientWithBaseURL allows pointing the client at a different
// endpoint, used by tests.
func NewGroqClientWithBaseURL(apiKey, baseURL string) *GroqClient {
	c := NewGroqClient(apiKey)
	c.baseURL = baseURL
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatCompletion sends one system+user prompt pair and returns the model's
// reply text.
func (c *GroqClient) ChatCompletion(system, user string, temperature float64, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("Groq API key not configured")
	}

	payload := chatCompletionRequest{
		Model: groqModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq completion failed (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode groq response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("groq returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
