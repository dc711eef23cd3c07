package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"localexplorer/internal/models/domain_models"
	"localexplorer/pkg/utils"
)

type ExtractorServiceInterface interface {
	SeedConversation() []domain_models.ChatMessage
	Interpret(ctx context.Context, conversation []domain_models.ChatMessage) (domain_models.AssistantReply, error)
	DeriveProfile(call *domain_models.ToolInvocation) (domain_models.TravelerProfile, error)
}

// ExtractorService wraps the language-model collaborator. It owns the seeded
// persona conversation and turns tool-call payloads into traveler profiles.
type ExtractorService struct {
	client      utils.ChatClientInterface
	timeout     time.Duration
	maxAttempts int
}

func NewExtractorService(client utils.ChatClientInterface) ExtractorServiceInterface {
	return &ExtractorService{
		client:      client,
		timeout:     30 * time.Second,
		maxAttempts: 2,
	}
}

// SeedConversation returns the system persona plus few-shot exchanges every
// new conversation starts from.
func (e *ExtractorService) SeedConversation() []domain_models.ChatMessage {
	return []domain_models.ChatMessage{
		{
			Role: "system",
			Content: "You are DubaiLocalExplorer, an intelligent assistant that helps tourists explore Dubai. " +
				"You engage in natural conversation to understand user preferences, confirm intent, and suggest " +
				"personalized day-trip itineraries. Use friendly, concise language.\n\n" +
				"Your goal is to:\n" +
				"- Help users clarify their interests, budget, group type, and duration\n" +
				"- Ask clarifying questions if data is missing\n" +
				"- Suggest experiences that match those constraints\n" +
				"- Think step-by-step and summarize total cost & time\n\n" +
				"Once you know the user's interests, budget in AED, trip duration in days, and group type, " +
				"call the match_experiences_to_profile function with those values. " +
				"Always tailor suggestions based on their profile. Keep the tone warm and adaptive.",
		},
		{
			Role:    "user",
			Content: "Hi! I'm in Dubai for 1 day. I'd love to explore cultural sites and try local food.",
		},
		{
			Role: "assistant",
			Content: "That sounds like a wonderful day! Here's a quick plan:\n" +
				"1. Start at Al Fahidi Historical District to explore Dubai Museum.\n" +
				"2. Ride an abra across the Creek to the Gold and Spice Souks.\n" +
				"3. Try Emirati cuisine at Al Seef or Arabian Tea House.\n\n" +
				"Would you prefer walking between places, or prefer transport arranged?",
		},
		{
			Role:    "user",
			Content: "I'm traveling with my wife, and we have around 700 AED to spend.",
		},
		{
			Role: "assistant",
			Content: "Thanks for sharing! That gives us good flexibility.\n" +
				"I'll make sure all experiences are within budget for a couple. " +
				"Would you like to include modern attractions like Dubai Frame or Museum of the Future?",
		},
	}
}

// Interpret submits the running conversation and returns the collaborator's
// tagged reply, retrying a bounded number of times before failing.
func (e *ExtractorService) Interpret(ctx context.Context, conversation []domain_models.ChatMessage) (domain_models.AssistantReply, error) {
	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(attempt-1) * time.Second)
		}

		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		reply, err := e.client.Interpret(callCtx, conversation)
		cancel()
		if err == nil {
			return reply, nil
		}
		lastErr = err
		log.Printf("Extractor attempt %d/%d failed: %v", attempt, e.maxAttempts, err)
	}

	return domain_models.AssistantReply{}, fmt.Errorf("%w: %v", utils.ErrCollaboratorUnavailable, lastErr)
}

// DeriveProfile decodes a profile tool call into a normalized partial
// profile. Unknown tools and malformed payloads are collaborator misbehavior,
// not user errors.
func (e *ExtractorService) DeriveProfile(call *domain_models.ToolInvocation) (domain_models.TravelerProfile, error) {
	if call == nil {
		return domain_models.TravelerProfile{}, fmt.Errorf("%w: nil tool call", utils.ErrUnexpectedBehaviorOfAI)
	}
	if call.ToolName != utils.ProfileToolName {
		return domain_models.TravelerProfile{}, fmt.Errorf("%w: unknown tool %q", utils.ErrUnexpectedBehaviorOfAI, call.ToolName)
	}

	var incoming domain_models.TravelerProfile
	if err := json.Unmarshal(call.ToolArgs, &incoming); err != nil {
		return domain_models.TravelerProfile{}, fmt.Errorf("%w: bad tool args: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	var profile domain_models.TravelerProfile
	profile.Merge(incoming)
	return profile, nil
}
