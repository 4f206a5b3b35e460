package services

import (
	"context"
	"testing"
	"time"

	"todo-app/backend/internal/cache"
	"todo-app/backend/internal/models"
	"todo-app/backend/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCachedTaskService(t *testing.T) (*CachedTaskService, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()

	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	redisCache := cache.NewRedisCache(&cache.CacheConfig{
		Addr:         mr.Addr(),
		PoolSize:     10,
		MinIdleConns: 1,
		DialTimeout:  time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	t.Cleanup(func() { redisCache.Close() })

	inner := NewTaskService(repositories.NewTaskStore(db))
	return NewCachedTaskService(inner, redisCache), db, mr
}

func TestCachedTaskServiceReadThrough(t *testing.T) {
	service, db, _ := newCachedTaskService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "a@x.com")

	task, err := service.Create(ctx, owner.ID, models.TaskCreateRequest{Title: "cache me"})
	require.NoError(t, err)

	// First read populates, second read is served from cache; deleting
	// the row underneath proves where the second read came from.
	got, err := service.Get(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "cache me", got.Title)

	require.NoError(t, db.Delete(&models.Task{}, task.ID).Error)

	cached, err := service.Get(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "cache me", cached.Title)
}

func TestCachedTaskServiceKeysAreOwnerScoped(t *testing.T) {
	service, db, _ := newCachedTaskService(t)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.com")
	bob := seedUser(t, db, "bob@x.com")

	task, err := service.Create(ctx, alice.ID, models.TaskCreateRequest{Title: "secret"})
	require.NoError(t, err)

	// Warm Alice's cache entry.
	_, err = service.Get(ctx, alice.ID, task.ID)
	require.NoError(t, err)

	// Bob's lookup must not hit Alice's cached entry.
	_, err = service.Get(ctx, bob.ID, task.ID)
	assert.ErrorIs(t, err, repositories.ErrTaskNotFound)
}

func TestCachedTaskServiceListInvalidation(t *testing.T) {
	service, db, _ := newCachedTaskService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "a@x.com")

	_, err := service.Create(ctx, owner.ID, models.TaskCreateRequest{Title: "first"})
	require.NoError(t, err)

	tasks, err := service.List(ctx, owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	// A write invalidates the cached list, so the next read sees it.
	_, err = service.Create(ctx, owner.ID, models.TaskCreateRequest{Title: "second"})
	require.NoError(t, err)

	tasks, err = service.List(ctx, owner.ID, nil)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestCachedTaskServiceDegradesWithoutRedis(t *testing.T) {
	service, db, mr := newCachedTaskService(t)
	ctx := context.Background()
	owner := seedUser(t, db, "a@x.com")

	mr.Close()

	// The cache being down must not break the data path.
	task, err := service.Create(ctx, owner.ID, models.TaskCreateRequest{Title: "resilient"})
	require.NoError(t, err)

	got, err := service.Get(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "resilient", got.Title)
}
