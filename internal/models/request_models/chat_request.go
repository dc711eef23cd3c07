package request_models

// Message is a pointer so a body without the field fails binding while an
// explicitly empty message passes through to the dialogue prompt.
type ChatRequest struct {
	Message   *string `json:"message" binding:"required"`
	SessionID string  `json:"session_id,omitempty"`
}
