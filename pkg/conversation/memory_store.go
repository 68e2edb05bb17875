package conversation

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps conversations in-process. go-cache handles the 2 hour
// idle expiry and purges expired chats every 10 minutes.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(TTL, 10*time.Minute),
	}
}

func (s *MemoryStore) Append(_ context.Context, chatID, role, content string) error {
	if chatID == "" {
		return nil
	}

	// one lock for all chats: appends are rare and tiny compared to the
	// network calls around them
	s.mu.Lock()
	defer s.mu.Unlock()

	var turns []Turn
	if x, found := s.cache.Get(chatID); found {
		turns = x.([]Turn)
	}

	turns = append(turns, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	if len(turns) > MaxTurns {
		turns = turns[len(turns)-MaxTurns:]
	}

	// Set also refreshes the idle expiry
	s.cache.Set(chatID, turns, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Context(_ context.Context, chatID string) (string, error) {
	if chatID == "" {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	x, found := s.cache.Get(chatID)
	if !found {
		return "", nil
	}
	return renderContext(x.([]Turn)), nil
}

func (s *MemoryStore) ActiveCount(_ context.Context) (int, error) {
	// Items copies only unexpired entries, unlike ItemCount
	return len(s.cache.Items()), nil
}
