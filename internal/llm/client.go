// Package llm defines the chat-model client used by the assistant services.
package llm

import "context"

// Message roles accepted by the chat model.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry of the conversation sent to the chat model.
// ImageURL, when set, attaches an inline image (data URL) to the message and
// makes the request multimodal.
type Message struct {
	Role     string
	Content  string
	ImageURL string
}

// Client is the boundary to the external chat model. Complete sends the full
// ordered message sequence (system + prior turns + latest user message) and
// returns the model's free-text answer.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
