package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"todo-app/backend/internal/middleware"
	"todo-app/backend/internal/models"
	"todo-app/backend/internal/repositories"
	"todo-app/backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	principalID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "User not authenticated"})
		return
	}

	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Invalid request format",
		})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Title must not be empty",
		})
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), principalID, req)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	principalID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "User not authenticated"})
		return
	}

	var completed *bool
	if raw := c.Query("completed"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation_error",
				"message": "completed must be true or false",
			})
			return
		}
		completed = &value
	}

	tasks, err := h.taskService.List(c.Request.Context(), principalID, completed)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	principalID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "User not authenticated"})
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), principalID, taskID)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	principalID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "User not authenticated"})
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	var patch models.TaskUpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Invalid request format",
		})
		return
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Title must not be empty",
		})
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), principalID, taskID, patch)
	if err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	principalID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated", "message": "User not authenticated"})
		return
	}

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), principalID, taskID); err != nil {
		handleTaskError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func parseTaskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_error",
			"message": "Task id must be an integer",
		})
		return 0, false
	}
	return uint(id), true
}

func handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Task not found"})
	case errors.Is(err, repositories.ErrOwnerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "owner_not_found", "message": "User not found"})
	default:
		internalError(c, "task request failed", err)
	}
}
