package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/notify/service"
	"github.com/gin-gonic/gin"
)

// NotificationHandler outbox endpoints
type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// EnqueueRequest manual enqueue payload. Kept for callers that used to hit a
// synchronous send endpoint; the mail now goes through the outbox like every
// other notification.
type EnqueueRequest struct {
	To              string `json:"to" binding:"required,email"`
	Name            string `json:"name" binding:"required"`
	Role            string `json:"role"`
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
	Username        string `json:"username"`
	Password        string `json:"password"`
}

// Enqueue queues one notification durably and returns immediately
// POST /api/v1/notifications
func (h *NotificationHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid notification payload: "+err.Error())
		return
	}

	var err error
	switch req.Status {
	case "approved", "rejected":
		err = h.svc.EnqueueStaffDecision(c.Request.Context(), req.To, req.Name, req.Role,
			req.Status, req.RejectionReason, req.Username, req.Password)
	default:
		err = h.svc.EnqueueOrderStatus(c.Request.Context(), req.To, req.Name, "", req.Status)
	}
	if err != nil {
		httputil.Fail(c, err, "enqueue notification")
		return
	}

	httputil.Success(c, gin.H{"message": "notification queued"})
}

// ListNotifications outbox rows
// GET /api/v1/notifications?status=pending
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		httputil.Fail(c, err, "list notifications")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetNotification one outbox row with delivery bookkeeping
// GET /api/v1/notifications/:id
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	n, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get notification")
		return
	}
	httputil.Success(c, n)
}

// GetStats outbox rows per status
// GET /api/v1/notifications/stats
func (h *NotificationHandler) GetStats(c *gin.Context) {
	counts, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err, "notification stats")
		return
	}
	httputil.Success(c, gin.H{"counts": counts})
}
