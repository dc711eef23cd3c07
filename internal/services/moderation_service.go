package services

import (
	"context"
	"log"
	"time"

	"localexplorer/internal/models/domain_models"
	"localexplorer/pkg/utils"
)

type ModerationGateInterface interface {
	Check(ctx context.Context, input string) domain_models.ModerationResult
}

// ModerationGate wraps the external moderation collaborator with a bounded
// timeout and retries. When every attempt fails it degrades to an unflagged
// result so a transient outage never blocks benign input (fail-open; the
// flip side is that unsafe input also passes during an outage).
type ModerationGate struct {
	client      utils.ModerationClientInterface
	timeout     time.Duration
	maxAttempts int
}

func NewModerationGate(client utils.ModerationClientInterface) ModerationGateInterface {
	return &ModerationGate{
		client:      client,
		timeout:     10 * time.Second,
		maxAttempts: 2,
	}
}

func (g *ModerationGate) Check(ctx context.Context, input string) domain_models.ModerationResult {
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(attempt-1) * 500 * time.Millisecond)
		}

		callCtx, cancel := context.WithTimeout(ctx, g.timeout)
		result, err := g.client.Check(callCtx, input)
		cancel()
		if err == nil {
			return result
		}
		lastErr = err
		log.Printf("Moderation attempt %d/%d failed: %v", attempt, g.maxAttempts, err)
	}

	log.Printf("Moderation degraded to fail-open: %v", lastErr)
	return domain_models.ModerationResult{
		Flagged:    false,
		Categories: map[string]float64{},
		Err:        lastErr.Error(),
	}
}
