package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Messages users see when the planner cannot run. The disabled prefix is a
// contract with the UI — it distinguishes "not configured" from "call
// failed" without either ever becoming a fatal error.
const (
	disabledPrefix = "(Trip planner AI disabled) "
	failurePrefix  = "Error calling trip planner AI: "
)

// Client is the pass-through to the OpenAI chat-completions API.
// An empty API key puts the client in a permanent disabled state: Plan still
// returns a string, just an explanatory one. The zero http.Client carries no
// timeout — a planning request blocks until the remote side answers, which
// is the documented behaviour of the single synchronous call.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a planner client. model and baseURL fall back to the
// production defaults when empty; apiKey may be empty (disabled state).
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = "gpt-5.1"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Ready reports whether planning calls can be made, and when they cannot,
// the message to show wherever the planner's status is displayed.
func (c *Client) Ready() (bool, string) {
	if c.apiKey == "" {
		return false, disabledPrefix + "OpenAI API key not set. Set OPENAI_API_KEY in the environment or .env file."
	}
	return true, "Trip planner AI is ready."
}

// chat-completions wire types; only the fields this client touches.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Plan sends the YAML planning document to the model and returns the prose
// itinerary. Every failure mode — missing key, network error, non-2xx,
// malformed response — comes back as a descriptive string, never as an
// error: the caller renders whatever Plan returns as plain text.
func (c *Client) Plan(ctx context.Context, configYAML string) string {
	if ready, msg := c.Ready(); !ready {
		return msg
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Here is the YAML config:\n```yaml\n" + configYAML + "\n```"},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return failurePrefix + err.Error()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return failurePrefix + err.Error()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failurePrefix + err.Error()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failurePrefix + err.Error()
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return failurePrefix + fmt.Sprintf("unexpected response (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}
	if parsed.Error != nil {
		return failurePrefix + parsed.Error.Message
	}
	if resp.StatusCode != http.StatusOK || len(parsed.Choices) == 0 {
		return failurePrefix + fmt.Sprintf("unexpected response (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	return parsed.Choices[0].Message.Content
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
