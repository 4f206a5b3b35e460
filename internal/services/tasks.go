package services

import (
	"context"

	"todo-app/backend/internal/models"
	"todo-app/backend/internal/repositories"
)

type TaskService interface {
	Create(ctx context.Context, principalID uint, req models.TaskCreateRequest) (*models.Task, error)
	Get(ctx context.Context, principalID, taskID uint) (*models.Task, error)
	List(ctx context.Context, principalID uint, completed *bool) ([]models.Task, error)
	Update(ctx context.Context, principalID, taskID uint, patch models.TaskUpdateRequest) (*models.Task, error)
	Delete(ctx context.Context, principalID, taskID uint) error
}

type TaskServiceImpl struct {
	tasks *repositories.TaskStore
}

func NewTaskService(tasks *repositories.TaskStore) *TaskServiceImpl {
	return &TaskServiceImpl{tasks: tasks}
}

// Create discards any client-supplied user_id and forces the owner to
// the authenticated principal. Skipping this would allow cross-tenant
// task injection.
func (s *TaskServiceImpl) Create(ctx context.Context, principalID uint, req models.TaskCreateRequest) (*models.Task, error) {
	task := &models.Task{
		UserID:      principalID,
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
		DueDate:     req.DueDate,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskServiceImpl) Get(ctx context.Context, principalID, taskID uint) (*models.Task, error) {
	return s.tasks.Find(ctx, taskID, principalID)
}

func (s *TaskServiceImpl) List(ctx context.Context, principalID uint, completed *bool) ([]models.Task, error) {
	return s.tasks.List(ctx, principalID, completed)
}

func (s *TaskServiceImpl) Update(ctx context.Context, principalID, taskID uint, patch models.TaskUpdateRequest) (*models.Task, error) {
	return s.tasks.Update(ctx, taskID, principalID, patch)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, principalID, taskID uint) error {
	return s.tasks.Delete(ctx, taskID, principalID)
}
