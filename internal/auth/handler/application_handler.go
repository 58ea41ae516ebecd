package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/auth/service"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler staff application endpoints
type ApplicationHandler struct {
	svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Apply files a staff application, public
// POST /api/v1/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req service.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid application payload: "+err.Error())
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "file application")
		return
	}

	httputil.Created(c, app)
}

// ListApplications staff applications
// GET /api/v1/applications?status=pending
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		httputil.Fail(c, err, "list applications")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetApplication application detail
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get application")
		return
	}
	httputil.Success(c, app)
}

// ApproveApplication issues credentials and queues the applicant mail
// POST /api/v1/applications/:id/approve
func (h *ApplicationHandler) ApproveApplication(c *gin.Context) {
	decidedBy := c.GetString("user_name")

	app, err := h.svc.Approve(c.Request.Context(), c.Param("id"), decidedBy)
	if err != nil {
		httputil.Fail(c, err, "approve application")
		return
	}

	httputil.Success(c, app)
}

// RejectApplication closes the application with a reason
// POST /api/v1/applications/:id/reject
func (h *ApplicationHandler) RejectApplication(c *gin.Context) {
	var req service.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid rejection payload: "+err.Error())
		return
	}

	decidedBy := c.GetString("user_name")

	app, err := h.svc.Reject(c.Request.Context(), c.Param("id"), decidedBy, &req)
	if err != nil {
		httputil.Fail(c, err, "reject application")
		return
	}

	httputil.Success(c, app)
}

// DeleteApplication removes an application record
// DELETE /api/v1/applications/:id
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete application")
		return
	}
	httputil.Success(c, gin.H{"message": "application deleted"})
}
