package generator

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/quizgenius/quizgenius/internal/config"
)

// Provider is the generative-model capability behind the pipeline. Tests
// substitute a deterministic stub.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}

type openaiProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &openaiProvider{client: openai.NewClient(apiKey), model: model}, nil
}

func (p *openaiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewProvider selects the configured backend. A missing credential yields
// ErrMissingAPIKey without touching the network.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.LLMProvider {
	case "openai":
		return NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	case "gemini", "":
		return NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
