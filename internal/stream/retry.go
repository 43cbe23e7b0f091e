package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
)

// RetryHandler retries failed message processing with exponential backoff
// and parks messages that keep failing on a dead-letter stream.
type RetryHandler struct {
	client        *redis.Client
	deadLetterKey string
	maxAttempts   int
	baseDelay     time.Duration
}

func NewRetryHandler(client *redis.Client, deadLetterKey string) *RetryHandler {
	return &RetryHandler{
		client:        client,
		deadLetterKey: deadLetterKey,
		maxAttempts:   defaultMaxAttempts,
		baseDelay:     defaultBaseDelay,
	}
}

// RetryWithBackoff runs fn up to maxAttempts times. After the final failure
// the original message is copied to the dead-letter stream and the last
// error is returned.
func (h *RetryHandler) RetryWithBackoff(ctx context.Context, fn func() error, messageID string, fields map[string]interface{}) error {
	var lastErr error

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		log.Warn().
			Err(lastErr).
			Str("message_id", messageID).
			Int("attempt", attempt).
			Int("max_attempts", h.maxAttempts).
			Msg("Message processing failed")

		if attempt == h.maxAttempts {
			break
		}

		delay := h.baseDelay << (attempt - 1)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	if err := h.sendToDeadLetter(ctx, messageID, fields, lastErr); err != nil {
		log.Error().Err(err).Str("message_id", messageID).Msg("Failed to park message on dead-letter stream")
	}

	return lastErr
}

func (h *RetryHandler) sendToDeadLetter(ctx context.Context, messageID string, fields map[string]interface{}, cause error) error {
	values := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		values[k] = v
	}
	values["original_id"] = messageID
	if cause != nil {
		values["error"] = cause.Error()
	}

	if err := h.client.XAdd(ctx, &redis.XAddArgs{
		Stream: h.deadLetterKey,
		Values: values,
	}).Err(); err != nil {
		return fmt.Errorf("failed to add to dead-letter stream: %w", err)
	}

	log.Info().
		Str("message_id", messageID).
		Str("dead_letter", h.deadLetterKey).
		Msg("Message moved to dead-letter stream")

	return nil
}
