package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"localexplorer/internal/models/domain_models"
)

// GeminiChatClient implements ChatClientInterface using Google's Gemini
// models with function calling.
type GeminiChatClient struct {
	client *genai.Client
	model  string
}

func NewGeminiChatClient(apiKey, model string) (ChatClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiChatClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiChatClient) Interpret(ctx context.Context, conversation []domain_models.ChatMessage) (domain_models.AssistantReply, error) {
	if len(conversation) == 0 {
		return domain_models.AssistantReply{}, fmt.Errorf("empty conversation")
	}

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.4)
	model.Tools = []*genai.Tool{
		{FunctionDeclarations: []*genai.FunctionDeclaration{profileFunctionDeclaration()}},
	}

	// Gemini takes the system prompt separately and knows only user/model roles.
	var history []*genai.Content
	var last string
	for i, msg := range conversation {
		switch msg.Role {
		case "system":
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(msg.Content)}}
		case "user", "assistant":
			if i == len(conversation)-1 && msg.Role == "user" {
				last = msg.Content
				continue
			}
			role := "user"
			if msg.Role == "assistant" {
				role = "model"
			}
			history = append(history, &genai.Content{
				Role:  role,
				Parts: []genai.Part{genai.Text(msg.Content)},
			})
		}
	}
	if last == "" {
		return domain_models.AssistantReply{}, fmt.Errorf("conversation must end with a user message")
	}

	session := model.StartChat()
	session.History = history

	resp, err := session.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return domain_models.AssistantReply{}, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return domain_models.AssistantReply{}, fmt.Errorf("no content generated by Gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			args, err := json.Marshal(call.Args)
			if err != nil {
				return domain_models.AssistantReply{}, fmt.Errorf("gemini tool args: %w", err)
			}
			return domain_models.AssistantReply{
				Kind: domain_models.ReplyToolCall,
				Call: &domain_models.ToolInvocation{
					ToolName:   call.Name,
					ToolArgs:   args,
					ToolCallID: uuid.New().String(),
				},
			}, nil
		}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	return domain_models.AssistantReply{
		Kind:    domain_models.ReplyMessage,
		Content: strings.TrimSpace(text.String()),
	}, nil
}

// profileFunctionDeclaration mirrors ProfileToolParameters for the Gemini API.
func profileFunctionDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        ProfileToolName,
		Description: "Get personalized Dubai experience recommendations based on user's travel interests, budget, available time, and group preferences. Scores and ranks the best-suited experiences.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"interests": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "User's top interests while visiting Dubai. These will be used to match experience tags.",
				},
				"budget_aed": {
					Type:        genai.TypeInteger,
					Description: "The total budget (in AED) that the user is willing to spend on experiences during their trip.",
				},
				"duration_days": {
					Type:        genai.TypeNumber,
					Description: "Total number of days the user will spend in Dubai. Assumes 8 hours of experience time per day.",
				},
				"group_type": {
					Type:        genai.TypeString,
					Enum:        []string{"solo", "couple", "family", "friends", "group"},
					Description: "The type of group traveling.",
				},
				"experience_type_preference": {
					Type:        genai.TypeArray,
					Items:       &genai.Schema{Type: genai.TypeString},
					Description: "Optional. Categories or types of experiences the user prefers.",
				},
				"strict_budget_match": {
					Type:        genai.TypeBoolean,
					Description: "Optional. If true, only experiences fully within budget are considered.",
				},
			},
			Required: []string{"interests", "budget_aed", "duration_days", "group_type"},
		},
	}
}
