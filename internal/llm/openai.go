package llm

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"agrimitra/internal/config"
)

// OpenAIClient calls the Azure OpenAI chat completion API. With no Azure
// endpoint configured it talks to the public OpenAI API instead, which keeps
// local development free of Azure plumbing.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds a chat-model client from the provider configuration.
func NewOpenAIClient(cfg config.AzureOpenAIConfig) *OpenAIClient {
	var clientConfig openai.ClientConfig
	if cfg.Endpoint != "" {
		clientConfig = openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
		clientConfig.APIVersion = cfg.APIVersion
	} else {
		clientConfig = openai.DefaultConfig(cfg.APIKey)
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.DeploymentName,
	}
}

// Complete sends the message sequence and returns the model's answer. Errors
// from the provider are returned as-is; there is no retry here.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}

		if m.ImageURL == "" {
			oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
			continue
		}

		// Multimodal message: text part plus an inline image at high detail
		// for crop close-ups.
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{
			Role: role,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: m.Content},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    m.ImageURL,
						Detail: openai.ImageURLDetailHigh,
					},
				},
			},
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
