package openai

import (
	"context"
	"fmt"

	"aroma-content-be/pkg/llm"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Provider implements llm.Provider on the OpenAI chat completions API.
type Provider struct {
	client openaisdk.Client
	model  string
}

var _ llm.Provider = &Provider{}

func NewProvider(apiKey string, model string) *Provider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Provider{
		client: openaisdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(history))
	for _, msg := range history {
		switch msg.Role {
		case "system":
			messages = append(messages, openaisdk.SystemMessage(msg.Content))
		case "assistant":
			messages = append(messages, openaisdk.AssistantMessage(msg.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(msg.Content))
		}
	}

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:       model,
		Messages:    messages,
		Temperature: openaisdk.Float(options.Temperature),
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(options.MaxTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *Provider) Complete(ctx context.Context, systemPrompt, userPrompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}, opts...)
}
