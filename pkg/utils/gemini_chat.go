package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiChatClient implements ChatClientInterface on Google's Gemini models.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(apiKey, model string) (ChatClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{client: client, model: model}, nil
}

func (c *GeminiChatClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	m := c.client.GenerativeModel(c.model)

	// Gemini takes the system turn separately; the rest is flattened into a
	// single prompt so the two backends stay interchangeable.
	var prompt strings.Builder
	for _, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(msg.Content)}}
		case RoleAssistant:
			prompt.WriteString("Guide: " + msg.Content + "\n")
		default:
			prompt.WriteString("Traveler: " + msg.Content + "\n")
		}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrGenerationFailed
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", ErrGenerationFailed
	}
	return text, nil
}
