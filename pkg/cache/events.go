package cache

import (
	"context"
	"time"
)

const processedEventPrefix = "billing:event:"

// ProcessedEvents remembers billing provider event IDs that were applied successfully,
// so redeliveries inside the retention window can be acknowledged without reprocessing.
type ProcessedEvents struct {
	client *Client
	ttl    time.Duration
}

// NewProcessedEvents creates an event log backed by Redis. ttl should cover the
// provider's retry horizon.
func NewProcessedEvents(client *Client, ttl time.Duration) *ProcessedEvents {
	return &ProcessedEvents{client: client, ttl: ttl}
}

// Seen reports whether eventID was already recorded.
func (p *ProcessedEvents) Seen(ctx context.Context, eventID string) (bool, error) {
	return p.client.Exists(ctx, processedEventPrefix+eventID)
}

// Remember records eventID. Recording an already known ID is not an error.
func (p *ProcessedEvents) Remember(ctx context.Context, eventID string) error {
	_, err := p.client.SetNX(ctx, processedEventPrefix+eventID, time.Now().UTC().Format(time.RFC3339), p.ttl)
	return err
}
