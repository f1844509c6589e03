package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// TTLDraft bounds how long an abandoned draft survives. Long enough to ride
// out an interrupted session, short enough that truly dead drafts age out.
var TTLDraft = 14 * 24 * time.Hour

// RedisDraftStore keeps drafts as JSON values in Redis, one key per record
// identity.

type RedisDraftStore struct {
	rdb *redis.Client
}

var _ interfaces.IDraftStore = (*RedisDraftStore)(nil)

func NewRedisDraftStore(rdb *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb}
}

func (s *RedisDraftStore) Get(ctx context.Context, key string) (entities.QuotationDraft, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.QuotationDraft{}, false, nil
	}
	if err != nil {
		return entities.QuotationDraft{}, false, err
	}

	var draft entities.QuotationDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return entities.QuotationDraft{}, false, err
	}
	return draft, true, nil
}

func (s *RedisDraftStore) Set(ctx context.Context, key string, draft entities.QuotationDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, raw, TTLDraft).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
