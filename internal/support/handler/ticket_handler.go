package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
	"github.com/gin-gonic/gin"
)

// TicketHandler support ticket endpoints
type TicketHandler struct {
	svc *service.TicketService
}

func NewTicketHandler(svc *service.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// CreateTicket opens a support ticket
// POST /api/v1/support
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid ticket payload: "+err.Error())
		return
	}

	ticket, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create ticket")
		return
	}

	httputil.Created(c, ticket)
}

// ListTickets ticket list
// GET /api/v1/support?status=Pending&page=1&page_size=20
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)
	status := c.Query("status")

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, status)
	if err != nil {
		httputil.Fail(c, err, "list tickets")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetTicket ticket detail with reply thread
// GET /api/v1/support/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id := c.Param("id")
	ticket, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Fail(c, err, "get ticket")
		return
	}
	httputil.Success(c, ticket)
}

// AppendReply adds a reply to the ticket conversation
// PUT /api/v1/support/:id/reply
func (h *TicketHandler) AppendReply(c *gin.Context) {
	id := c.Param("id")
	var req service.AppendReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid reply payload: "+err.Error())
		return
	}

	replies, err := h.svc.AppendReply(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Fail(c, err, "append reply")
		return
	}

	httputil.Success(c, gin.H{"responses": replies})
}

// SetStatus moves the ticket through its lifecycle
// PUT /api/v1/support/:id/status
func (h *TicketHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid status payload: "+err.Error())
		return
	}

	ticket, err := h.svc.SetStatus(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Fail(c, err, "update ticket status")
		return
	}

	httputil.Success(c, ticket)
}

// GetStats ticket counts per status
// GET /api/v1/dashboard/tickets
func (h *TicketHandler) GetStats(c *gin.Context) {
	counts, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err, "ticket stats")
		return
	}
	httputil.Success(c, gin.H{"counts": counts})
}

// DeleteTicket removes a ticket permanently
// DELETE /api/v1/support/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httputil.Fail(c, err, "delete ticket")
		return
	}
	httputil.Success(c, gin.H{"message": "ticket deleted"})
}
