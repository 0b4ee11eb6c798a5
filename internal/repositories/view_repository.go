package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"wanderworld/internal/storefront"
	mem "wanderworld/pkg/memcache"
	"wanderworld/pkg/utils"
)

// ViewRepository keeps each visitor's storefront view between requests.
// Load returns ok=false when the visitor has no live view yet.
type ViewRepository interface {
	Load(ctx context.Context, visitorID uuid.UUID) (view *storefront.View, ok bool, err error)
	Save(ctx context.Context, visitorID uuid.UUID, view *storefront.View) error
}

const viewKeyPrefix = "storefront:view:"

func viewKey(visitorID uuid.UUID) string {
	return viewKeyPrefix + visitorID.String()
}

func encodeView(view *storefront.View) ([]byte, error) {
	b, err := json.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("%w: encode view: %v", utils.ErrViewStore, err)
	}
	return b, nil
}

func decodeView(b []byte) (*storefront.View, error) {
	var view storefront.View
	if err := json.Unmarshal(b, &view); err != nil {
		return nil, fmt.Errorf("%w: decode view: %v", utils.ErrViewStore, err)
	}
	return &view, nil
}

type memoryViewRepository struct {
	store mem.Store
	ttl   time.Duration
}

func NewMemoryViewRepository(store mem.Store, ttl time.Duration) ViewRepository {
	return &memoryViewRepository{store: store, ttl: ttl}
}

func (r *memoryViewRepository) Load(ctx context.Context, visitorID uuid.UUID) (*storefront.View, bool, error) {
	b, ok := r.store.Get(viewKey(visitorID))
	if !ok {
		return nil, false, nil
	}
	view, err := decodeView(b)
	if err != nil {
		return nil, false, err
	}
	return view, true, nil
}

func (r *memoryViewRepository) Save(ctx context.Context, visitorID uuid.UUID, view *storefront.View) error {
	b, err := encodeView(view)
	if err != nil {
		return err
	}
	r.store.Set(viewKey(visitorID), b, r.ttl)
	return nil
}

type redisViewRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisViewRepository(rdb *redis.Client, ttl time.Duration) ViewRepository {
	return &redisViewRepository{rdb: rdb, ttl: ttl}
}

func (r *redisViewRepository) Load(ctx context.Context, visitorID uuid.UUID) (*storefront.View, bool, error) {
	b, err := r.rdb.Get(ctx, viewKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: redis get: %v", utils.ErrViewStore, err)
	}
	view, err := decodeView(b)
	if err != nil {
		return nil, false, err
	}
	return view, true, nil
}

func (r *redisViewRepository) Save(ctx context.Context, visitorID uuid.UUID, view *storefront.View) error {
	b, err := encodeView(view)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, viewKey(visitorID), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: redis set: %v", utils.ErrViewStore, err)
	}
	return nil
}
