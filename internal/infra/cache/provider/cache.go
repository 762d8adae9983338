package provider

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "availability:provider:"

// CachedRepository read-through кэш провайдеров в Redis.
// Ошибки Redis не прерывают запрос: чтение уходит в исходный репозиторий.
// Отсутствующие провайдеры не кэшируются.
type CachedRepository struct {
	next   Repository
	client Client
	ttl    time.Duration
	logger Logger
}

// NewCachedRepository создает кэширующую обёртку над репозиторием провайдеров
func NewCachedRepository(next Repository, client Client, ttl time.Duration, logger Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// cachedProvider модель провайдера в кэше
type cachedProvider struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetByID получает провайдера по ID
func (c *CachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	return c.get(ctx, idKey(id), func() (*domain.Provider, error) {
		return c.next.GetByID(ctx, id)
	})
}

// GetByUsername получает провайдера по username
func (c *CachedRepository) GetByUsername(ctx context.Context, username string) (*domain.Provider, error) {
	return c.get(ctx, usernameKey(username), func() (*domain.Provider, error) {
		return c.next.GetByUsername(ctx, username)
	})
}

func (c *CachedRepository) get(ctx context.Context, key string, load func() (*domain.Provider, error)) (*domain.Provider, error) {
	if provider, ok := c.read(ctx, key); ok {
		return provider, nil
	}

	provider, err := load()
	if err != nil {
		return nil, err
	}

	c.write(ctx, key, provider)
	return provider, nil
}

func (c *CachedRepository) read(ctx context.Context, key string) (*domain.Provider, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("ProviderCache: redis get key=%s failed: %v", key, err)
		}
		return nil, false
	}

	var cached cachedProvider
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("ProviderCache: corrupted entry key=%s: %v", key, err)
		return nil, false
	}

	return &domain.Provider{
		ID:        cached.ID,
		Username:  cached.Username,
		Timezone:  cached.Timezone,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, true
}

func (c *CachedRepository) write(ctx context.Context, key string, provider *domain.Provider) {
	data, err := json.Marshal(cachedProvider{
		ID:        provider.ID,
		Username:  provider.Username,
		Timezone:  provider.Timezone,
		CreatedAt: provider.CreatedAt,
		UpdatedAt: provider.UpdatedAt,
	})
	if err != nil {
		c.logger.Error("ProviderCache: marshal provider id=%s: %v", provider.ID, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("ProviderCache: redis set key=%s failed: %v", key, err)
	}
}

func idKey(id uuid.UUID) string {
	return keyPrefix + "id:" + id.String()
}

func usernameKey(username string) string {
	return keyPrefix + "username:" + strings.ToLower(username)
}
