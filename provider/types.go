package provider

import (
	"strings"
	"time"
)

// Request configures a completion call.
type Request struct {
	// SystemPrompt sets the system message that guides the model's behavior.
	SystemPrompt string `json:"system_prompt,omitempty"`

	// Messages is the conversation to send to the model.
	Messages []Message `json:"messages"`

	// Model overrides the client's configured model for this call.
	Model string `json:"model,omitempty"`

	// MaxTokens limits the response length. 0 uses the client default.
	MaxTokens int `json:"max_tokens,omitempty"`

	// Temperature controls response randomness (0.0 = deterministic, 1.0 = creative).
	// Nil uses the client default.
	Temperature *float64 `json:"temperature,omitempty"`

	// Options holds provider-specific configuration.
	Options map[string]any `json:"options,omitempty"`
}

// Prompt returns the text of all user messages joined by blank lines.
func (r Request) Prompt() string {
	var parts []string
	for _, m := range r.Messages {
		if m.Role == RoleUser {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}

// Message is a conversation turn.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewTextMessage creates a text message.
func NewTextMessage(role Role, content string) Message {
	return Message{Role: role, Content: content}
}

// Role identifies the message sender.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Response is the output of a completion call.
type Response struct {
	// Content is the text response from the model.
	Content string `json:"content"`

	// Usage tracks token consumption for this request.
	Usage TokenUsage `json:"usage"`

	// Model is the model that served the request.
	Model string `json:"model"`

	// FinishReason indicates why the model stopped generating.
	FinishReason string `json:"finish_reason"`

	// Duration is the time taken for the completion.
	Duration time.Duration `json:"duration"`

	// Metadata holds provider-specific response data.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add combines token usage from another TokenUsage.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// Float returns a pointer to f, for Request.Temperature.
func Float(f float64) *float64 {
	return &f
}
