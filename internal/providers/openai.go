// Package providers adapts external model APIs to the schema.LLMProvider
// interface.
package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/inkwhale/inkwhale/internal/config"
	"github.com/inkwhale/inkwhale/internal/schema"
)

// OpenAIProvider speaks the chat completions API of any OpenAI-compatible
// endpoint through the official SDK.
type OpenAIProvider struct {
	client       openai.Client
	defaultModel string
}

// NewOpenAIProvider constructs a provider. apiKey is the already-resolved
// key (config value or environment); an empty APIBase targets
// api.openai.com.
func NewOpenAIProvider(apiKey, defaultModel string, cfg config.ProviderConfig) *OpenAIProvider {
	opts := []openaiopt.RequestOption{openaiopt.WithAPIKey(apiKey)}
	if cfg.APIBase != "" {
		opts = append(opts, openaiopt.WithBaseURL(cfg.APIBase))
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, openaiopt.WithRequestTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg.MaxRetries >= 0 {
		opts = append(opts, openaiopt.WithMaxRetries(cfg.MaxRetries))
	}
	for k, v := range cfg.ExtraHeaders {
		opts = append(opts, openaiopt.WithHeader(k, v))
	}

	return &OpenAIProvider{
		client:       openai.NewClient(opts...),
		defaultModel: defaultModel,
	}
}

// DefaultModel returns the model used when ChatOptions does not name one.
func (p *OpenAIProvider) DefaultModel() string { return p.defaultModel }

// Chat implements schema.LLMProvider. A reply with no choices or no text
// content is an error: the conversation loop has nothing to act on.
func (p *OpenAIProvider) Chat(ctx context.Context, messages schema.Messages, opts schema.ChatOptions) (schema.Reply, error) {
	model := opts.Model
	if model == "" {
		model = p.defaultModel
	}

	req := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: convertMessages(messages),
	}
	if opts.MaxTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(opts.MaxTokens))
	}
	if opts.Temperature > 0 {
		req.Temperature = openai.Float(opts.Temperature)
	}
	if opts.TopP > 0 {
		req.TopP = openai.Float(opts.TopP)
	}
	if opts.FrequencyPenalty > 0 {
		req.FrequencyPenalty = openai.Float(opts.FrequencyPenalty)
	}
	if opts.PresencePenalty > 0 {
		req.PresencePenalty = openai.Float(opts.PresencePenalty)
	}

	completion, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return schema.Reply{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return schema.Reply{}, fmt.Errorf("model %s returned no choices", model)
	}

	content := completion.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return schema.Reply{}, fmt.Errorf("model %s returned an empty reply", model)
	}

	return schema.Reply{
		Content: content,
		Model:   completion.Model,
		Usage: schema.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

// convertMessages maps transcript messages onto the SDK's param unions.
// Unknown roles are sent as user messages.
func convertMessages(messages schema.Messages) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, messages.Len())
	for _, m := range messages.Messages {
		switch m.Role {
		case schema.RoleSystem:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		case schema.RoleAssistant:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Content: openai.ChatCompletionAssistantMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		default:
			out = append(out, openai.ChatCompletionMessageParamUnion{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(m.Content),
					},
				},
			})
		}
	}
	return out
}
