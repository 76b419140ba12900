package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ============================================================================
// INSIGHT CLIENT — Remote reasoning boundary
// ============================================================================
// The only component that calls an external service. It sends a compact
// entity-listing context plus the user's question to the Gemini API and
// returns the reply verbatim. The reply is an opaque string: nothing in
// the core parses it.
//
// Failures never propagate as-is to users; ClassifyFailure turns them
// into one of four user-facing categories with a fallback message.
// ============================================================================

// Config holds the remote service settings.
type Config struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Endpoint string `yaml:"endpoint"`
}

// DefaultConfig returns Gemini defaults for an API key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		Model:    "gemini-2.0-flash",
		Endpoint: "https://generativelanguage.googleapis.com/v1beta/models",
	}
}

// Client calls the remote reasoning service.
type Client struct {
	config Config
	http   *http.Client
	log    *zap.Logger
}

// NewClient creates a client. A nil logger disables logging.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    logger,
	}
}

// Ask sends a question about the loaded data and returns the reply text.
// dataContext comes from BuildDataContext; the service never sees more
// than those listings and the question.
func (c *Client) Ask(ctx context.Context, question, dataContext string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an assistant for a resource-allocation configurator.\n\n%s\n\nQUESTION: %s\n\nAnswer concisely in plain text.",
		dataContext, question)

	c.log.Info("asking reasoning service",
		zap.String("model", c.config.Model),
		zap.String("question", truncate(question, 80)))

	reply, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warn("reasoning service failed", zap.Error(err))
		return "", err
	}
	return reply, nil
}

// generate performs one generateContent call.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s",
		c.config.Endpoint, c.config.Model, c.config.APIKey)

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{{Text: prompt}},
		}},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("service returned %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("service error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("service returned empty response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// geminiRequest is the generateContent request body.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// geminiResponse is the generateContent response body.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
