package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// ShipmentHandler delivery run endpoints
type ShipmentHandler struct {
	svc *service.ShipmentService
}

func NewShipmentHandler(svc *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{svc: svc}
}

// CreateShipment new delivery run
// POST /api/v1/shipments
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req service.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid shipment payload: "+err.Error())
		return
	}

	shipment, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create shipment")
		return
	}

	httputil.Created(c, shipment)
}

// ListShipments delivery runs
// GET /api/v1/shipments?status=scheduled
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		httputil.Fail(c, err, "list shipments")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetShipment delivery run detail
// GET /api/v1/shipments/:id
func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	shipment, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get shipment")
		return
	}
	httputil.Success(c, shipment)
}

// UpdateShipment partial shipment update
// PUT /api/v1/shipments/:id
func (h *ShipmentHandler) UpdateShipment(c *gin.Context) {
	var req service.UpdateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid shipment payload: "+err.Error())
		return
	}

	shipment, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update shipment")
		return
	}

	httputil.Success(c, shipment)
}

// UpdateStatus moves the run through its lifecycle
// POST /api/v1/shipments/:id/status
func (h *ShipmentHandler) UpdateStatus(c *gin.Context) {
	var req service.UpdateShipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid status payload: "+err.Error())
		return
	}

	shipment, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update shipment status")
		return
	}

	httputil.Success(c, shipment)
}

// DeleteShipment removes a delivery run
// DELETE /api/v1/shipments/:id
func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete shipment")
		return
	}
	httputil.Success(c, gin.H{"message": "shipment deleted"})
}
