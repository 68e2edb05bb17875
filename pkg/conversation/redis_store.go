package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "conversation:"

// RedisStore keeps conversations in Redis so several instances can share
// them. Each chat is a list of JSON turns; LTRIM enforces the turn cap and
// EXPIRE the idle TTL. The MULTI/EXEC pipeline keeps the read-modify-write
// of one append atomic.
type RedisStore struct {
	client *redis.Client
}

var _ Store = &RedisStore{}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Append(ctx context.Context, chatID, role, content string) error {
	if chatID == "" {
		return nil
	}

	payload, err := json.Marshal(Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("marshal turn: %w", err)
	}

	key := redisKeyPrefix + chatID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -MaxTurns, -1)
	pipe.Expire(ctx, key, TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append conversation turn: %w", err)
	}
	return nil
}

func (s *RedisStore) Context(ctx context.Context, chatID string) (string, error) {
	if chatID == "" {
		return "", nil
	}

	raw, err := s.client.LRange(ctx, redisKeyPrefix+chatID, -ContextWindow, -1).Result()
	if err != nil {
		return "", fmt.Errorf("load conversation: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var turn Turn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			continue // skip unreadable turns rather than failing the request
		}
		turns = append(turns, turn)
	}
	return renderContext(turns), nil
}

func (s *RedisStore) ActiveCount(ctx context.Context) (int, error) {
	var count int
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan conversations: %w", err)
	}
	return count, nil
}
