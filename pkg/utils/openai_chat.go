package utils

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIChatClient talks to any OpenAI-compatible chat-completion endpoint.
// With LLM_BASE_URL pointed at an Ollama instance (http://host:11434/v1) it
// covers local models as well.
type OpenAIChatClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIChatClient(apiKey, baseURL, model string) ChatClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		},
	}

	return &OpenAIChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenAIChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{Model: c.model}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrGenerationFailed
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrGenerationFailed
	}
	return text, nil
}
