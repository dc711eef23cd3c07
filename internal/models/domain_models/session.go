package domain_models

type ConversationState string

const (
	StateInit              ConversationState = "INIT"
	StateProfileCollecting ConversationState = "PROFILE_COLLECTING"
	StateProfileConfirmed  ConversationState = "PROFILE_CONFIRMED"
	StateBookingRequest    ConversationState = "BOOKING_REQUEST"
	StateBookingConfirmed  ConversationState = "BOOKING_CONFIRMED"
)

// ChatMessage is one role-tagged turn of the running conversation passed to
// the language-model collaborator.
type ChatMessage struct {
	Role    string `json:"role"` // system | user | assistant
	Content string `json:"content"`
}

// ConversationSession is the per-conversation record owned by the dialogue
// state machine. Turns within a session are processed strictly sequentially;
// the store enforces that with a per-session lock.
type ConversationSession struct {
	ID                  string
	State               ConversationState
	Profile             TravelerProfile
	LastRecommendations []ScoredExperience
	History             []ChatMessage
}

func NewConversationSession(id string) *ConversationSession {
	return &ConversationSession{
		ID:    id,
		State: StateInit,
	}
}

// Reset returns the session to INIT with an empty profile. Used after a
// completed booking and as the self-healing fallback for unrecognized states.
func (s *ConversationSession) Reset() {
	s.State = StateInit
	s.Profile = TravelerProfile{}
	s.LastRecommendations = nil
	s.History = nil
}
