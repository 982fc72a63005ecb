package schema

import "context"

// ChatOptions configures a single LLM chat request. The same options are
// sent on every request of a turn, including the follow-up requests issued
// after a tool call.
type ChatOptions struct {
	Model            string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// Usage is the token accounting reported by the provider for one request.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Add accumulates counts from another Usage.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// Reply is one assistant reply as returned by a provider. Content is never
// empty: a response the provider could not extract text from is reported as
// an error, not as an empty Reply.
type Reply struct {
	Content string
	Model   string // model that actually served the request
	Usage   Usage
}

// LLMProvider is the interface every model backend must satisfy.
// The conversation goes in, one reply comes out; everything else about the
// transport is the implementation's business.
type LLMProvider interface {
	Chat(ctx context.Context, messages Messages, opts ChatOptions) (Reply, error)
	DefaultModel() string
}
