package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/snapvault/snapvault-backend/config"
)

// Channel per screenshot: snapvault:edits:{screenshot_id}
const editChannelPrefix = "snapvault:edits:"

// NewClient builds a Redis client from config, or nil when no address
// is configured (events are then disabled).
func NewClient(cfg *config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Publisher fans out edit-created notifications over Redis pub/sub so
// external render/notification workers can react. It is best-effort:
// the database write has already committed when publishing happens.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// EditCreated publishes the edit payload on the screenshot's channel.
// Failures are logged, never returned.
func (p *Publisher) EditCreated(ctx context.Context, screenshotID string, edit interface{}) {
	if p == nil || p.client == nil {
		return
	}

	payload, err := json.Marshal(edit)
	if err != nil {
		log.Printf("[events] marshal edit event: %v", err)
		return
	}

	channel := editChannelPrefix + screenshotID
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("[events] publish %s: %v", channel, err)
	}
}
