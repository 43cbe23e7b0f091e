package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/raohamdcreator-bit/verity/internal/infra/redis"
	"github.com/raohamdcreator-bit/verity/internal/models"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const statusTTL = 12 * time.Hour

// StatusTracker records scan progress so the API can answer status polls.
type StatusTracker interface {
	Update(ctx context.Context, teamID string, step models.Step) error
	Get(ctx context.Context, teamID string) (models.Step, error)
}

// RedisStatusTracker keeps scan status in Redis under a per-team key.
type RedisStatusTracker struct {
	client *redis.Client
}

func NewRedisStatusTracker(client *redis.Client) *RedisStatusTracker {
	return &RedisStatusTracker{client: client}
}

func statusKey(teamID string) string {
	return "scan_status:" + teamID
}

func (t *RedisStatusTracker) Update(ctx context.Context, teamID string, step models.Step) error {
	validSteps := map[models.Step]bool{
		models.StepIdle:      true,
		models.StepQueued:    true,
		models.StepScanning:  true,
		models.StepReporting: true,
		models.StepCompleted: true,
		models.StepFailed:    true,
	}
	if !validSteps[step] {
		return fmt.Errorf("unknown step: %s", step)
	}

	rkey := statusKey(teamID)
	if err := t.client.Set(ctx, rkey, string(step), statusTTL).Err(); err != nil {
		log.Error().Err(err).
			Str("step", string(step)).
			Str("teamID", teamID).
			Str("redisKey", rkey).
			Msg("Failed to update scan status in Redis")
		return fmt.Errorf("failed to update scan status in Redis: %w", err)
	}

	log.Trace().
		Str("step", string(step)).
		Str("teamID", teamID).
		Msg("Scan status updated")

	return nil
}

// Get returns the current step for a team, or StepIdle when no scan has run
// within the status TTL.
func (t *RedisStatusTracker) Get(ctx context.Context, teamID string) (models.Step, error) {
	val, err := t.client.Get(ctx, statusKey(teamID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return models.StepIdle, nil
		}
		return "", fmt.Errorf("failed to read scan status: %w", err)
	}
	return models.Step(val), nil
}
