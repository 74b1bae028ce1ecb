package station

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"
)

// Events publishes mutation notifications for realtime listeners. Publishing
// is best-effort: failures are logged and swallowed, and a nil client
// disables it entirely.
type Events struct {
	rdb *redis.Client
}

func NewEvents(rdb *redis.Client) *Events {
	return &Events{rdb: rdb}
}

func (e *Events) Publish(ctx context.Context, eventType string, payload map[string]any) {
	if e == nil || e.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("station events: marshal event: %v", err)
		return
	}
	if err := e.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("station events: publish event: %v", err)
	}
}
