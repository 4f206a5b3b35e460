package repositories

import (
	"context"
	"errors"
	"time"

	"todo-app/backend/internal/models"

	"gorm.io/gorm"
)

// TaskStore performs ownership-scoped task persistence. Every lookup and
// mutation carries the owner's id in the WHERE clause, so a task owned by
// another user is indistinguishable from one that does not exist.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create persists a task. The owner must resolve to an existing user;
// the FK constraint is only a backstop for that check.
func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", task.UserID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOwnerNotFound
		}
		return tx.Create(task).Error
	})
}

func (s *TaskStore) Find(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns the owner's tasks ordered by id ascending. A non-nil
// completed narrows the result to matching is_completed values.
func (s *TaskStore) List(ctx context.Context, ownerID uint, completed *bool) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", ownerID)
	if completed != nil {
		query = query.Where("is_completed = ?", *completed)
	}

	var tasks []models.Task
	if err := query.Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a patch: only non-nil fields change. UpdatedAt is
// refreshed even when the patch is empty.
func (s *TaskStore) Update(ctx context.Context, id, ownerID uint, patch models.TaskUpdateRequest) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"updated_at": time.Now().UTC(),
		}
		if patch.Title != nil {
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.IsCompleted != nil {
			updates["is_completed"] = *patch.IsCompleted
		}
		if patch.DueDate != nil {
			updates["due_date"] = *patch.DueDate
		}

		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&task, task.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskStore) Delete(ctx context.Context, id, ownerID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}
