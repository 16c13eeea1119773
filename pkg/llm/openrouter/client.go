package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/smarthealth/connect/pkg/llm"
)

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client
// with function calling support.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	httpDo   *http.Client
}

func New(apiKey, baseURL, model, appTitle, referer string) *Client {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = "google/gemini-2.5-flash"
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
		AppTitle: appTitle,
		Referer:  referer,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type functionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type toolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function functionCall `json:"function"`
}

type message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	Name       string     `json:"name,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []toolCall `json:"tool_calls,omitempty"`
}

type functionSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type toolDef struct {
	Type     string       `json:"type"`
	Function functionSpec `json:"function"`
}

type chatCompletionsRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Tools    []toolDef `json:"tools,omitempty"`
	// Keep defaults conservative; callers can change by editing fields if needed.
	Temperature float32 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role      string     `json:"role"`
		Content   string     `json:"content"`
		ToolCalls []toolCall `json:"tool_calls"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionsResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
}

// Complete sends the conversation plus any declared tools and returns the
// model reply: final text or the tool calls it wants executed.
func (c *Client) Complete(ctx context.Context, turns []llm.Turn, systemPrompt string, tools []llm.ToolSpec) (llm.Result, error) {
	if c.APIKey == "" {
		return llm.Result{}, errors.New("openrouter api key is empty")
	}
	msgs := make([]message, 0, len(turns)+1)
	if systemPrompt != "" {
		msgs = append(msgs, message{Role: "system", Content: systemPrompt})
	}
	for _, t := range turns {
		m := message{Role: t.Role, Content: t.Content}
		if t.Role == llm.RoleTool {
			m.ToolCallID = t.ToolCallID
			m.Name = t.ToolName
		}
		for _, tc := range t.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, toolCall{
				ID:   tc.ID,
				Type: "function",
				Function: functionCall{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		msgs = append(msgs, m)
	}
	reqBody := chatCompletionsRequest{
		Model:       c.Model,
		Messages:    msgs,
		Temperature: 0.2,
	}
	for _, t := range tools {
		params := map[string]any{
			"type":       "object",
			"properties": t.Parameters,
		}
		if len(t.Required) > 0 {
			params["required"] = t.Required
		}
		reqBody.Tools = append(reqBody.Tools, toolDef{
			Type: "function",
			Function: functionSpec{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		})
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return llm.Result{}, err
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return llm.Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
	if c.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		httpReq.Header.Set("X-Title", c.AppTitle)
	}

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return llm.Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return llm.Result{}, fmt.Errorf("openrouter http %d: %v", resp.StatusCode, errMap)
	}
	var out chatCompletionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return llm.Result{}, err
	}
	if len(out.Choices) == 0 {
		return llm.Result{}, errors.New("no choices returned by model")
	}
	choice := out.Choices[0]
	res := llm.Result{Content: choice.Message.Content}
	for _, tc := range choice.Message.ToolCalls {
		res.ToolCalls = append(res.ToolCalls, llm.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: json.RawMessage(tc.Function.Arguments),
		})
	}
	return res, nil
}
