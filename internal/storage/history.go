// Package storage keeps a per-client history of analysis summaries in Redis.
// It lives entirely in the API layer; the engine itself holds no state
// between invocations.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/outreach-engine/internal/config"
)

// HistoryEntry is one analysis summary. Draft text is never stored, only
// lengths and scores.
type HistoryEntry struct {
	ID           string    `json:"id"`
	AnalyzedAt   time.Time `json:"analyzedAt"`
	EmailType    string    `json:"emailType"`
	OverallScore int       `json:"overallScore"`
	LetterGrade  string    `json:"letterGrade"`
	SubjectLen   int       `json:"subjectLen"`
	BodyLen      int       `json:"bodyLen"`
}

// HistoryStore is a capped, expiring list of HistoryEntry per client.
type HistoryStore struct {
	client   *redis.Client
	ttl      time.Duration
	maxItems int
}

// NewHistoryStore connects to Redis using the given configuration.
func NewHistoryStore(cfg config.RedisConfig) *HistoryStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &HistoryStore{
		client:   client,
		ttl:      cfg.HistoryTTL(),
		maxItems: cfg.HistoryMaxItems,
	}
}

// Ping verifies connectivity, used by the health endpoint.
func (s *HistoryStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *HistoryStore) Close() error {
	return s.client.Close()
}

func historyKey(clientID string) string {
	return "outreach:history:" + clientID
}

// Record prepends an entry to the client's history, trims the list to the
// configured cap and refreshes the TTL.
func (s *HistoryStore) Record(ctx context.Context, clientID string, entry HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling history entry: %w", err)
	}

	key := historyKey(clientID)
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	if s.maxItems > 0 {
		pipe.LTrim(ctx, key, 0, int64(s.maxItems)-1)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("recording history for %s: %w", clientID, err)
	}
	return nil
}

// List returns the client's most recent entries, newest first.
func (s *HistoryStore) List(ctx context.Context, clientID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 || (s.maxItems > 0 && limit > s.maxItems) {
		limit = s.maxItems
	}
	if limit <= 0 {
		limit = 50
	}

	raw, err := s.client.LRange(ctx, historyKey(clientID), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("listing history for %s: %w", clientID, err)
	}

	entries := make([]HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var e HistoryEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			// Skip entries written by an incompatible version.
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
