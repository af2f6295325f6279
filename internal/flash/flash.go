package flash

import (
	"context"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const cookieName = "booking_flash"

// Store keeps one-shot flash messages in Redis, keyed by a per-browser
// cookie token, so acknowledgements survive the redirect after a
// mutation. Messages expire on their own if never read.
type Store struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Store{Client: client, TTL: ttl}
}

func (s *Store) token(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return token
}

func (s *Store) key(token string) string {
	return "flash:" + token
}

// Add queues a message for the requesting browser.
func (s *Store) Add(ctx context.Context, w http.ResponseWriter, r *http.Request, message string) {
	if s.Client == nil {
		return
	}
	key := s.key(s.token(w, r))
	if err := s.Client.RPush(ctx, key, message).Err(); err != nil {
		return
	}
	s.Client.Expire(ctx, key, s.TTL)
}

// Pop drains and returns the queued messages for the requesting
// browser. Each message is delivered at most once.
func (s *Store) Pop(ctx context.Context, w http.ResponseWriter, r *http.Request) []string {
	if s.Client == nil {
		return nil
	}
	key := s.key(s.token(w, r))
	messages, err := s.Client.LRange(ctx, key, 0, -1).Result()
	if err != nil || len(messages) == 0 {
		return nil
	}
	s.Client.Del(ctx, key)
	return messages
}
