package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"todo-app/backend/internal/cache"
	"todo-app/backend/internal/models"
)

const (
	taskCacheTTL = 30 * time.Minute
	listCacheTTL = 10 * time.Minute
)

// CachedTaskService decorates a TaskService with a Redis read-through
// cache. Every key embeds the owner's id, so a cache hit can never
// serve another tenant's data. Cache failures fall back to the store.
type CachedTaskService struct {
	inner TaskService
	cache *cache.RedisCache
}

func NewCachedTaskService(inner TaskService, cacheInstance *cache.RedisCache) *CachedTaskService {
	return &CachedTaskService{inner: inner, cache: cacheInstance}
}

func taskKey(ownerID, taskID uint) string {
	return fmt.Sprintf("task:%d:%d", ownerID, taskID)
}

func listKey(ownerID uint, completed *bool) string {
	if completed == nil {
		return fmt.Sprintf("user_tasks:%d:all", ownerID)
	}
	return fmt.Sprintf("user_tasks:%d:completed=%t", ownerID, *completed)
}

func (s *CachedTaskService) invalidateOwner(ctx context.Context, ownerID uint) {
	if err := s.cache.DeletePattern(ctx, fmt.Sprintf("user_tasks:%d:*", ownerID)); err != nil {
		log.Printf("cache invalidation failed for owner %d: %v", ownerID, err)
	}
}

func (s *CachedTaskService) Create(ctx context.Context, principalID uint, req models.TaskCreateRequest) (*models.Task, error) {
	task, err := s.inner.Create(ctx, principalID, req)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, taskKey(task.UserID, task.ID), task, taskCacheTTL); err != nil {
		log.Printf("cache set failed for task %d: %v", task.ID, err)
	}
	s.invalidateOwner(ctx, task.UserID)

	return task, nil
}

func (s *CachedTaskService) Get(ctx context.Context, principalID, taskID uint) (*models.Task, error) {
	key := taskKey(principalID, taskID)

	var cached models.Task
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	task, err := s.inner.Get(ctx, principalID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, task, taskCacheTTL); err != nil {
		log.Printf("cache set failed for task %d: %v", taskID, err)
	}
	return task, nil
}

func (s *CachedTaskService) List(ctx context.Context, principalID uint, completed *bool) ([]models.Task, error) {
	key := listKey(principalID, completed)

	var cached []models.Task
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.inner.List(ctx, principalID, completed)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, tasks, listCacheTTL); err != nil {
		log.Printf("cache set failed for list %s: %v", key, err)
	}
	return tasks, nil
}

func (s *CachedTaskService) Update(ctx context.Context, principalID, taskID uint, patch models.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.inner.Update(ctx, principalID, taskID, patch)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, taskKey(principalID, taskID), task, taskCacheTTL); err != nil {
		log.Printf("cache set failed for task %d: %v", taskID, err)
	}
	s.invalidateOwner(ctx, principalID)

	return task, nil
}

func (s *CachedTaskService) Delete(ctx context.Context, principalID, taskID uint) error {
	if err := s.inner.Delete(ctx, principalID, taskID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, taskKey(principalID, taskID)); err != nil {
		log.Printf("cache delete failed for task %d: %v", taskID, err)
	}
	s.invalidateOwner(ctx, principalID)

	return nil
}
