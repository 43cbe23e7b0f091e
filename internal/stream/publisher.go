package stream

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Publisher appends scan requests to the scan stream.
type Publisher struct {
	client    *redis.Client
	streamKey string
}

func NewPublisher(client *redis.Client, streamKey string) *Publisher {
	return &Publisher{
		client:    client,
		streamKey: streamKey,
	}
}

func (p *Publisher) PublishScanRequest(ctx context.Context, event *ScanEvent) error {
	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamKey,
		Values: event.Values(),
	}).Result()
	if err != nil {
		return fmt.Errorf("failed to publish scan request: %w", err)
	}

	log.Debug().
		Str("message_id", id).
		Str("teamId", event.TeamID).
		Str("scanId", event.ScanID).
		Msg("Scan request published")

	return nil
}
