package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// TaskHandler grower task endpoints
type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// CreateTask new grower task
// POST /api/v1/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid task payload: "+err.Error())
		return
	}

	task, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create task")
		return
	}

	httputil.Created(c, task)
}

// ListTasks grower tasks with optional status/assignee filters
// GET /api/v1/tasks?status=Incomplete&assignee=Sam
func (h *TaskHandler) ListTasks(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"), c.Query("assignee"))
	if err != nil {
		httputil.Fail(c, err, "list tasks")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetTask task detail
// GET /api/v1/tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get task")
		return
	}
	httputil.Success(c, task)
}

// UpdateTask partial task update including status
// PUT /api/v1/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid task payload: "+err.Error())
		return
	}

	task, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update task")
		return
	}

	httputil.Success(c, task)
}

// DeleteTask removes a task
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete task")
		return
	}
	httputil.Success(c, gin.H{"message": "task deleted"})
}
