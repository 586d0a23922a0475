package persistence

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"workforce-api/internal/shared/logger"
	"workforce-api/internal/workforce/domain/model"

	"github.com/redis/go-redis/v9"
)

// streamPrefix namespaces workforce change streams inside a shared Redis.
const streamPrefix = "workforce:changes:"

// streamMaxLen caps each stream; XADD trims approximately for cheap writes.
const streamMaxLen = 10000

// RedisEventStore appends ChangeEvents to per-entity Redis Streams so
// consumers that are not connected to the websocket feed can still replay
// recent changes.
type RedisEventStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisEventStore creates a Redis-backed change-event store.
func NewRedisEventStore(client *redis.Client, log logger.Logger) *RedisEventStore {
	return &RedisEventStore{client: client, logger: log}
}

// Append stores one change event in the stream for its entity.
func (r *RedisEventStore) Append(ctx context.Context, event model.ChangeEvent) error {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}

	stream := streamPrefix + event.Entity
	_, err = r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":          event.ID,
			"entity":      event.Entity,
			"businessKey": event.BusinessKey,
			"change":      string(event.Change),
			"data":        data,
			"timestamp":   event.Timestamp.UnixMilli(),
		},
	}).Result()
	if err != nil {
		r.logger.WithFields(map[string]interface{}{
			"stream": stream,
			"change": string(event.Change),
		}).Errorf("failed to append change event: %v", err)
		return err
	}

	return nil
}

// Recent returns up to limit most recent events for entity, oldest first.
func (r *RedisEventStore) Recent(ctx context.Context, entity string, limit int64) ([]model.ChangeEvent, error) {
	stream := streamPrefix + entity

	messages, err := r.client.XRevRangeN(ctx, stream, "+", "-", limit).Result()
	if err != nil {
		return nil, err
	}

	events := make([]model.ChangeEvent, 0, len(messages))
	// XRevRange yields newest first; rebuild in chronological order.
	for i := len(messages) - 1; i >= 0; i-- {
		events = append(events, decodeStreamMessage(messages[i]))
	}
	return events, nil
}

func decodeStreamMessage(msg redis.XMessage) model.ChangeEvent {
	event := model.ChangeEvent{}

	if v, ok := msg.Values["id"].(string); ok {
		event.ID = v
	}
	if v, ok := msg.Values["entity"].(string); ok {
		event.Entity = v
	}
	if v, ok := msg.Values["businessKey"].(string); ok {
		event.BusinessKey = v
	}
	if v, ok := msg.Values["change"].(string); ok {
		event.Change = model.ChangeType(v)
	}
	if v, ok := msg.Values["data"].(string); ok && v != "" {
		_ = json.Unmarshal([]byte(v), &event.Data)
	}
	if v, ok := msg.Values["timestamp"].(string); ok {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			event.Timestamp = time.UnixMilli(ms).UTC()
		}
	}

	return event
}
