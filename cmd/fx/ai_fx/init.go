package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"localexplorer/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	ProvideModerationClient)

// ChatConfig holds configuration for the language-model collaborator.
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates the extractor's chat client based on environment
// variables.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIChatClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiChatClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideModerationClient creates the moderation collaborator client. The
// moderations endpoint is OpenAI-only regardless of the chat provider.
func ProvideModerationClient() utils.ModerationClientInterface {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEY not set; moderation will degrade to fail-open")
	}
	return utils.NewOpenAIModerationClient(apiKey)
}

func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("CHAT_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
