package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/entity"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/repository"
	"github.com/google/uuid"
)

// TaskService grower task management
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTaskRequest new grower task
type CreateTaskRequest struct {
	Name     string    `json:"name" binding:"required"`
	Assignee string    `json:"assignee" binding:"required"`
	Priority string    `json:"priority" binding:"required"`
	DueDate  time.Time `json:"due_date"`
}

// UpdateTaskRequest partial task update
type UpdateTaskRequest struct {
	Name     *string    `json:"name"`
	Assignee *string    `json:"assignee"`
	Priority *string    `json:"priority"`
	DueDate  *time.Time `json:"due_date"`
	Status   *string    `json:"status"`
}

func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*entity.GrowerTask, error) {
	if !entity.IsTaskPriority(req.Priority) {
		return nil, fmt.Errorf("%w: priority must be High, Medium or Low", httputil.ErrValidation)
	}
	task := &entity.GrowerTask{
		ID:       uuid.New().String()[:32],
		Name:     req.Name,
		Assignee: req.Assignee,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		Status:   entity.TaskStatusIncomplete,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, page, pageSize int, status, assignee string) ([]entity.GrowerTask, int64, error) {
	if status != "" && !entity.IsTaskStatus(status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, status)
	}
	return s.repo.FindAll(ctx, page, pageSize, status, assignee)
}

func (s *TaskService) Get(ctx context.Context, id string) (*entity.GrowerTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id string, req *UpdateTaskRequest) (*entity.GrowerTask, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}
	if req.Priority != nil {
		if !entity.IsTaskPriority(*req.Priority) {
			return nil, fmt.Errorf("%w: priority must be High, Medium or Low", httputil.ErrValidation)
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.Status != nil {
		if !entity.IsTaskStatus(*req.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", httputil.ErrValidation, *req.Status)
		}
		task.Status = *req.Status
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
