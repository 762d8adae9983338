package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	providerRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Provider)
	return p, args.Error(1)
}

func (m *mockRepository) GetByUsername(ctx context.Context, username string) (*domain.Provider, error) {
	args := m.Called(ctx, username)
	p, _ := args.Get(0).(*domain.Provider)
	return p, args.Error(1)
}

// memoryClient хранит значения в map, getErr/setErr имитируют недоступность Redis
type memoryClient struct {
	data   map[string]string
	getErr error
	setErr error
}

func newMemoryClient() *memoryClient {
	return &memoryClient{data: make(map[string]string)}
}

func (c *memoryClient) Get(_ context.Context, key string) *redis.StringCmd {
	if c.getErr != nil {
		return redis.NewStringResult("", c.getErr)
	}
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *memoryClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if c.setErr != nil {
		return redis.NewStatusResult("", c.setErr)
	}
	c.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	p := &domain.Provider{ID: uuid.New(), Username: "Anna", Timezone: "Europe/Moscow"}

	repo := &mockRepository{}
	repo.On("GetByUsername", ctx, "Anna").Return(p, nil).Once()

	cache := NewCachedRepository(repo, newMemoryClient(), time.Minute, logger.Nop())

	first, err := cache.GetByUsername(ctx, "Anna")
	require.NoError(t, err)
	second, err := cache.GetByUsername(ctx, "Anna")
	require.NoError(t, err)

	assert.Equal(t, p.ID, first.ID)
	assert.Equal(t, p.ID, second.ID)
	assert.Equal(t, "Europe/Moscow", second.Timezone)
	repo.AssertExpectations(t)
}

func TestCachedRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	repo := &mockRepository{}
	repo.On("GetByID", ctx, id).Return(nil, providerRepo.ErrProviderNotFound).Twice()

	client := newMemoryClient()
	cache := NewCachedRepository(repo, client, time.Minute, logger.Nop())

	for i := 0; i < 2; i++ {
		_, err := cache.GetByID(ctx, id)
		assert.ErrorIs(t, err, providerRepo.ErrProviderNotFound)
	}
	assert.Empty(t, client.data)
	repo.AssertExpectations(t)
}

func TestCachedRepository_RedisUnavailable(t *testing.T) {
	ctx := context.Background()
	p := &domain.Provider{ID: uuid.New(), Username: "bob"}

	repo := &mockRepository{}
	repo.On("GetByID", ctx, p.ID).Return(p, nil).Twice()

	client := newMemoryClient()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("connection refused")
	cache := NewCachedRepository(repo, client, time.Minute, logger.Nop())

	for i := 0; i < 2; i++ {
		got, err := cache.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	}
	repo.AssertExpectations(t)
}

func TestCachedRepository_CorruptedEntry(t *testing.T) {
	ctx := context.Background()
	p := &domain.Provider{ID: uuid.New(), Username: "kate"}

	repo := &mockRepository{}
	repo.On("GetByID", ctx, p.ID).Return(p, nil).Once()

	client := newMemoryClient()
	client.data[idKey(p.ID)] = "{not json"
	cache := NewCachedRepository(repo, client, time.Minute, logger.Nop())

	got, err := cache.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "kate", got.Username)
	assert.NotEqual(t, "{not json", client.data[idKey(p.ID)])
}

func TestUsernameKey_CaseInsensitive(t *testing.T) {
	assert.Equal(t, usernameKey("Anna"), usernameKey("anna"))
}
