package handler

import (
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler order endpoints
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// parseWindow reads optional from/to query dates (YYYY-MM-DD).
func parseWindow(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.BadRequest(c, "invalid from date, expected YYYY-MM-DD")
			return nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.BadRequest(c, "invalid to date, expected YYYY-MM-DD")
			return nil, nil, false
		}
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return from, to, true
}

// CreateOrder opens a new order
// POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid order payload: "+err.Error())
		return
	}

	order, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create order")
		return
	}

	httputil.Created(c, order)
}

// ListOrders order list with status and date filters
// GET /api/v1/orders?status=pending&from=2026-01-01&to=2026-01-31
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)
	status := c.Query("status")
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, status, from, to)
	if err != nil {
		httputil.Fail(c, err, "list orders")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetOrder order detail with items and history
// GET /api/v1/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get order")
		return
	}
	httputil.Success(c, order)
}

// UpdateStatus moves the order through its lifecycle
// POST /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid status payload: "+err.Error())
		return
	}

	order, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update order status")
		return
	}

	httputil.Success(c, order)
}

// GetHistory status history of one order
// GET /api/v1/orders/:id/history
func (h *OrderHandler) GetHistory(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get order history")
		return
	}
	httputil.Success(c, gin.H{"history": history})
}

// DeleteOrder removes an order permanently
// DELETE /api/v1/orders/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete order")
		return
	}
	httputil.Success(c, gin.H{"message": "order deleted"})
}
