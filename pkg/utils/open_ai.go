package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"localexplorer/internal/models/domain_models"
)

// ChatClientInterface is the narrow contract the dialogue core needs from the
// language-model collaborator: a running conversation in, a tagged reply out.
type ChatClientInterface interface {
	Interpret(ctx context.Context, conversation []domain_models.ChatMessage) (domain_models.AssistantReply, error)
}

// ModerationClientInterface wraps the content-moderation collaborator.
type ModerationClientInterface interface {
	Check(ctx context.Context, input string) (domain_models.ModerationResult, error)
}

// OpenAIChatClient implements ChatClientInterface with the chat completions
// API, declaring the profile schema as an available function tool.
type OpenAIChatClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIChatClient(apiKey, model string) ChatClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIChatClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: 0.4,
	}
}

func (c *OpenAIChatClient) Interpret(ctx context.Context, conversation []domain_models.ChatMessage) (domain_models.AssistantReply, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(conversation))
	for _, msg := range conversation {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		Tools:       []openai.Tool{ProfileTool()},
	})
	if err != nil {
		return domain_models.AssistantReply{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return domain_models.AssistantReply{}, fmt.Errorf("openai returned no choices")
	}

	choice := resp.Choices[0].Message
	if len(choice.ToolCalls) > 0 {
		call := choice.ToolCalls[0]
		return domain_models.AssistantReply{
			Kind: domain_models.ReplyToolCall,
			Call: &domain_models.ToolInvocation{
				ToolName:   call.Function.Name,
				ToolArgs:   json.RawMessage(call.Function.Arguments),
				ToolCallID: call.ID,
			},
		}, nil
	}

	return domain_models.AssistantReply{
		Kind:    domain_models.ReplyMessage,
		Content: strings.TrimSpace(choice.Content),
	}, nil
}

// OpenAIModerationClient implements ModerationClientInterface with the
// moderations endpoint.
type OpenAIModerationClient struct {
	client *openai.Client
}

func NewOpenAIModerationClient(apiKey string) ModerationClientInterface {
	return &OpenAIModerationClient{client: openai.NewClient(apiKey)}
}

func (c *OpenAIModerationClient) Check(ctx context.Context, input string) (domain_models.ModerationResult, error) {
	resp, err := c.client.Moderations(ctx, openai.ModerationRequest{Input: input})
	if err != nil {
		return domain_models.ModerationResult{}, fmt.Errorf("openai moderation: %w", err)
	}
	if len(resp.Results) == 0 {
		return domain_models.ModerationResult{}, fmt.Errorf("openai moderation returned no results")
	}

	result := resp.Results[0]
	categories := make(map[string]float64)
	raw, err := json.Marshal(result.CategoryScores)
	if err == nil {
		json.Unmarshal(raw, &categories)
	}

	return domain_models.ModerationResult{
		Flagged:    result.Flagged,
		Categories: categories,
	}, nil
}
