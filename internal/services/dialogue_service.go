package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"localexplorer/internal/catalog"
	"localexplorer/internal/models/domain_models"
	mem "localexplorer/pkg/memcache"
	"localexplorer/pkg/utils"
)

const (
	welcomeMessage = "👋 **Welcome to Dubai AI Local Travel Assistant!**\n" +
		"I'm your personal AI guide here to help you discover the top attractions, activities, and local experiences in Dubai.\n" +
		"Just tell me what you're looking for — and I'll do the rest! 🏝️🌆🐪"

	// Refusal keeps the session state untouched even though the wording
	// suggests otherwise; see DESIGN.md.
	moderationRefusal = "Sorry, this message has been flagged. Please restart your conversation."

	emptyMessagePrompt = "Please enter a valid message."

	collaboratorDownMessage = "I'm having trouble reaching my assistant right now. Please try again in a moment."
	handOffMessage          = "Sorry, no matching attractions. Connecting you to a human expert."
	bookingPrompt           = "Great! Which experience would you like to book? Type the exact name."
	bookingRetryPrompt      = "Couldn't find that experience in your list. Please copy the name exactly."
	changePrompt            = "Sure, what would you like to change?"
	confirmedReprompt       = "Would you like to book one of these, or update your preferences?"
	bookingDoneMessage      = "Booking successful. Would you like to plan something else?"
	recoveryMessage         = "Something went wrong. Let's start over. Tell me your preferences!"
)

type DialogueServiceInterface interface {
	Advance(ctx context.Context, sessionID string, userInput string) (string, error)
	Recommendations(sessionID string) ([]domain_models.RecommendedExperience, error)
}

// DialogueService is the per-turn orchestrator: moderation gate, profile
// extraction, scoring and selection, all driven by the session state machine.
type DialogueService struct {
	store     *mem.SessionStore
	catalog   *catalog.Catalog
	gate      ModerationGateInterface
	extractor ExtractorServiceInterface
	scorer    ScoringServiceInterface
	selector  RecommendationServiceInterface
}

func NewDialogueService(
	store *mem.SessionStore,
	cat *catalog.Catalog,
	gate ModerationGateInterface,
	extractor ExtractorServiceInterface,
	scorer ScoringServiceInterface,
	selector RecommendationServiceInterface,
) DialogueServiceInterface {
	return &DialogueService{
		store:     store,
		catalog:   cat,
		gate:      gate,
		extractor: extractor,
		scorer:    scorer,
		selector:  selector,
	}
}

// Advance processes one turn for the given conversation. Turns within a
// session are serialized by the store's per-session lock; all business
// failures surface as conversational text, never as transport errors.
func (d *DialogueService) Advance(ctx context.Context, sessionID string, userInput string) (string, error) {
	session, release := d.store.Acquire(sessionID)
	defer release()

	input := strings.TrimSpace(userInput)
	if input == "" {
		return emptyMessagePrompt, nil
	}
	if input == "__start__" {
		return welcomeMessage, nil
	}

	moderation := d.gate.Check(ctx, input)
	if moderation.Flagged {
		// Refusal only; no state transition on a flagged turn.
		return moderationRefusal, nil
	}

	switch session.State {
	case domain_models.StateInit:
		return d.handleCollectingTurn(ctx, session, input)

	case domain_models.StateProfileCollecting:
		return d.handleCollectingTurn(ctx, session, input)

	case domain_models.StateProfileConfirmed:
		return d.handleConfirmed(session, input), nil

	case domain_models.StateBookingRequest:
		return d.handleBookingRequest(session, input), nil

	case domain_models.StateBookingConfirmed:
		session.Reset()
		return bookingDoneMessage, nil

	default:
		log.Printf("Session %s in unrecognized state %q, resetting", session.ID, session.State)
		session.Reset()
		return recoveryMessage, nil
	}
}

// handleCollectingTurn covers both INIT and PROFILE_COLLECTING: run the
// extractor over the running conversation, merge whatever fields came back,
// and either confirm the profile or keep collecting.
func (d *DialogueService) handleCollectingTurn(ctx context.Context, session *domain_models.ConversationSession, input string) (string, error) {
	if len(session.History) == 0 {
		session.History = d.extractor.SeedConversation()
	}
	session.History = append(session.History, domain_models.ChatMessage{Role: "user", Content: input})

	reply, err := d.extractor.Interpret(ctx, session.History)
	if err != nil {
		// Collaborator outage: drop the failed turn from the history so a
		// retry re-sends it, and leave the session state untouched.
		session.History = session.History[:len(session.History)-1]
		log.Printf("Session %s extractor failure: %v", session.ID, err)
		return collaboratorDownMessage, nil
	}

	switch reply.Kind {
	case domain_models.ReplyToolCall:
		incoming, err := d.extractor.DeriveProfile(reply.Call)
		if err != nil {
			session.History = session.History[:len(session.History)-1]
			log.Printf("Session %s unusable tool call: %v", session.ID, err)
			return collaboratorDownMessage, nil
		}
		session.Profile.Merge(incoming)

		if session.Profile.Complete() {
			response := d.confirmProfile(session)
			session.History = append(session.History, domain_models.ChatMessage{Role: "assistant", Content: response})
			return response, nil
		}

		session.State = domain_models.StateProfileCollecting
		response := clarifyPrompt(session.Profile.MissingFields())
		session.History = append(session.History, domain_models.ChatMessage{Role: "assistant", Content: response})
		return response, nil

	case domain_models.ReplyMessage:
		// The model is still conversing; no fields merged this turn. Keep
		// collecting and let its own clarifying question through.
		session.State = domain_models.StateProfileCollecting
		session.History = append(session.History, domain_models.ChatMessage{Role: "assistant", Content: reply.Content})
		return reply.Content, nil

	default:
		session.History = session.History[:len(session.History)-1]
		log.Printf("Session %s unknown reply kind %q", session.ID, reply.Kind)
		return collaboratorDownMessage, nil
	}
}

// confirmProfile runs the scoring engine and selector, stores the shown
// recommendations, and moves the session to PROFILE_CONFIRMED.
func (d *DialogueService) confirmProfile(session *domain_models.ConversationSession) string {
	ranked := d.scorer.ScoreExperiences(session.Profile, d.catalog)
	message, shown := d.selector.SelectTopN(ranked, DefaultTopN)

	topN := len(shown)
	session.LastRecommendations = ranked[:topN]
	session.State = domain_models.StateProfileConfirmed

	if len(ranked) == 0 {
		return message
	}
	if confirmed := d.selector.Validate(shown); len(confirmed) == 0 {
		return handOffMessage
	}
	return message
}

func (d *DialogueService) handleConfirmed(session *domain_models.ConversationSession, input string) string {
	lower := strings.ToLower(input)
	if strings.Contains(lower, "book") || strings.Contains(lower, "reserve") {
		session.State = domain_models.StateBookingRequest
		return bookingPrompt
	}
	if strings.Contains(lower, "change") || strings.Contains(lower, "update") {
		session.Profile.MarkAllMissing()
		session.State = domain_models.StateProfileCollecting
		return changePrompt
	}
	return confirmedReprompt
}

func (d *DialogueService) handleBookingRequest(session *domain_models.ConversationSession, input string) string {
	for _, rec := range session.LastRecommendations {
		if strings.EqualFold(rec.Experience.Name, input) {
			session.State = domain_models.StateBookingConfirmed
			return fmt.Sprintf("Booking confirmed for **%s**! Have an amazing experience.", rec.Experience.Name)
		}
	}
	return bookingRetryPrompt
}

// Recommendations returns the machine-readable form of the last ranked set
// shown to the session.
func (d *DialogueService) Recommendations(sessionID string) ([]domain_models.RecommendedExperience, error) {
	session, ok := d.store.Snapshot(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}

	items := make([]domain_models.RecommendedExperience, 0, len(session.LastRecommendations))
	for _, rec := range session.LastRecommendations {
		items = append(items, domain_models.RecommendedExperience{
			Name:        rec.Experience.Name,
			Description: rec.Experience.Description,
			Score:       rec.Score,
			Rationale:   rec.Rationale,
		})
	}
	return items, nil
}

// clarifyPrompt lists the still-missing fields in the fixed order interests,
// budget_aed, duration_days, group_type.
func clarifyPrompt(missing []string) string {
	var prompts []string
	for _, field := range missing {
		switch field {
		case "interests":
			prompts = append(prompts, "What types of experiences interest you? (e.g., culture, beach, food)")
		case "budget_aed":
			prompts = append(prompts, "What is your budget in AED?")
		case "duration_days":
			prompts = append(prompts, "How many days will you spend in Dubai?")
		case "group_type":
			prompts = append(prompts, "Are you traveling alone, as a couple, with family, or friends?")
		}
	}
	return "I just need a few more details: " + strings.Join(prompts, " ")
}
