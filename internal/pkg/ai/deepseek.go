// Package ai provides the DeepSeek chat-completion client for gcommit.
package ai

import (
	"context"
	"time"

	apperrors "github.com/gcommit/gcommit/internal/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is the chat model used for message generation.
	DefaultModel = "deepseek-chat"

	// DefaultEndpoint is the DeepSeek API base URL. The chat-completion
	// request is posted to <endpoint>/chat/completions.
	DefaultEndpoint = "https://api.deepseek.com"

	// SystemPrompt is the fixed system instruction sent with every request.
	SystemPrompt = "You are a helpful assistant that writes a short git commit message for the staged changes."

	providerName = "DeepSeek"
)

// Generator produces a commit message from staged diff text.
type Generator interface {
	GenerateCommitMessage(ctx context.Context, diff string) (string, error)
}

// DeepSeekClient implements Generator against the DeepSeek chat-completion API.
// DeepSeek is OpenAI-compatible, so the go-openai client handles the wire format.
type DeepSeekClient struct {
	client   *openai.Client
	apiKey   string
	model    string
	endpoint string
}

// NewClient creates a DeepSeek client with the given credential.
// The credential is validated when a generation is attempted, not here.
func NewClient(apiKey string) *DeepSeekClient {
	return NewClientWithEndpoint(apiKey, DefaultEndpoint)
}

// NewClientWithEndpoint creates a DeepSeek client against a custom base URL.
func NewClientWithEndpoint(apiKey, endpoint string) *DeepSeekClient {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = endpoint

	return &DeepSeekClient{
		client:   openai.NewClientWithConfig(clientConfig),
		apiKey:   apiKey,
		model:    DefaultModel,
		endpoint: endpoint,
	}
}

// GenerateCommitMessage sends the diff to DeepSeek and returns the first
// candidate's message content unmodified. The request carries exactly two
// messages: the fixed system instruction and the diff text verbatim.
func (c *DeepSeekClient) GenerateCommitMessage(ctx context.Context, diff string) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.NewMissingAPIKeyError()
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: diff,
			},
		},
		Stream: false,
	}

	apperrors.LogAPIRequest("deepseek", c.endpoint, c.model, len(diff))
	startTime := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", apperrors.NewAIProviderError(providerName, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEmptyResponseError(providerName)
	}

	content := resp.Choices[0].Message.Content
	apperrors.LogAPIResponse("deepseek", len(content), time.Since(startTime))
	apperrors.Debug("Token usage: prompt=%d, completion=%d, total=%d",
		resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens)

	return content, nil
}

// Name returns the provider name.
func (c *DeepSeekClient) Name() string {
	return "deepseek"
}
