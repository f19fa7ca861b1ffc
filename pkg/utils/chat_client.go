package utils

import "context"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatClientInterface is the generation-backend contract: ordered role/content
// turns in, plain text out. Implementations must honor the context deadline
// and fail cleanly; the caller decides the fallback.
type ChatClientInterface interface {
	Complete(ctx context.Context, messages []ChatMessage) (string, error)
}
