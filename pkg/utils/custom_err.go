package utils

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrSessionNotFound         = errors.New("session not found")
	ErrUnexpectedBehaviorOfAI  = errors.New("unexpected AI behavior")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrDatabaseError           = errors.New("database error")
)
