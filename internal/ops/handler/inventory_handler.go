package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// InventoryHandler stock, supplier and replenishment endpoints
type InventoryHandler struct {
	svc *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// CreateStock new stock line
// POST /api/v1/stock
func (h *InventoryHandler) CreateStock(c *gin.Context) {
	var req service.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid stock payload: "+err.Error())
		return
	}

	stock, err := h.svc.CreateStock(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create stock")
		return
	}

	httputil.Created(c, stock)
}

// ListStock stock lines, ?low=true restricts to lines at or below threshold
// GET /api/v1/stock
func (h *InventoryHandler) ListStock(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)
	lowOnly := c.Query("low") == "true"

	items, total, err := h.svc.ListStock(c.Request.Context(), page, pageSize, lowOnly)
	if err != nil {
		httputil.Fail(c, err, "list stock")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetStock stock line detail
// GET /api/v1/stock/:id
func (h *InventoryHandler) GetStock(c *gin.Context) {
	stock, err := h.svc.GetStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get stock")
		return
	}
	httputil.Success(c, stock)
}

// UpdateStock partial stock update
// PUT /api/v1/stock/:id
func (h *InventoryHandler) UpdateStock(c *gin.Context) {
	var req service.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid stock payload: "+err.Error())
		return
	}

	stock, err := h.svc.UpdateStock(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update stock")
		return
	}

	httputil.Success(c, stock)
}

// DeleteStock removes a stock line
// DELETE /api/v1/stock/:id
func (h *InventoryHandler) DeleteStock(c *gin.Context) {
	if err := h.svc.DeleteStock(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete stock")
		return
	}
	httputil.Success(c, gin.H{"message": "stock deleted"})
}

// CreateSupplier new supplier
// POST /api/v1/suppliers
func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req service.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid supplier payload: "+err.Error())
		return
	}

	supplier, err := h.svc.CreateSupplier(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create supplier")
		return
	}

	httputil.Created(c, supplier)
}

// ListSuppliers supplier list
// GET /api/v1/suppliers
func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.ListSuppliers(c.Request.Context(), page, pageSize)
	if err != nil {
		httputil.Fail(c, err, "list suppliers")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetSupplier supplier detail
// GET /api/v1/suppliers/:id
func (h *InventoryHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.svc.GetSupplier(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get supplier")
		return
	}
	httputil.Success(c, supplier)
}

// UpdateSupplier partial supplier update
// PUT /api/v1/suppliers/:id
func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	var req service.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid supplier payload: "+err.Error())
		return
	}

	supplier, err := h.svc.UpdateSupplier(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update supplier")
		return
	}

	httputil.Success(c, supplier)
}

// DeleteSupplier removes a supplier
// DELETE /api/v1/suppliers/:id
func (h *InventoryHandler) DeleteSupplier(c *gin.Context) {
	if err := h.svc.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete supplier")
		return
	}
	httputil.Success(c, gin.H{"message": "supplier deleted"})
}

// CreateOrderStock new replenishment order
// POST /api/v1/order-stock
func (h *InventoryHandler) CreateOrderStock(c *gin.Context) {
	var req service.CreateOrderStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid replenishment payload: "+err.Error())
		return
	}

	order, err := h.svc.CreateOrderStock(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create replenishment order")
		return
	}

	httputil.Created(c, order)
}

// ListOrderStock replenishment orders
// GET /api/v1/order-stock?status=pending
func (h *InventoryHandler) ListOrderStock(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.ListOrderStock(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		httputil.Fail(c, err, "list replenishment orders")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetOrderStock replenishment order detail
// GET /api/v1/order-stock/:id
func (h *InventoryHandler) GetOrderStock(c *gin.Context) {
	order, err := h.svc.GetOrderStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get replenishment order")
		return
	}
	httputil.Success(c, order)
}

// ReceiveOrderStock marks a replenishment order received, optionally adding
// its quantity to a stock line
// POST /api/v1/order-stock/:id/receive {stock_id?}
func (h *InventoryHandler) ReceiveOrderStock(c *gin.Context) {
	var req struct {
		StockID string `json:"stock_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid receive payload: "+err.Error())
		return
	}

	order, err := h.svc.ReceiveOrderStock(c.Request.Context(), c.Param("id"), req.StockID)
	if err != nil {
		httputil.Fail(c, err, "receive replenishment order")
		return
	}

	httputil.Success(c, order)
}

// CancelOrderStock cancels a pending replenishment order
// POST /api/v1/order-stock/:id/cancel
func (h *InventoryHandler) CancelOrderStock(c *gin.Context) {
	order, err := h.svc.CancelOrderStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "cancel replenishment order")
		return
	}
	httputil.Success(c, order)
}

// DeleteOrderStock removes a replenishment order
// DELETE /api/v1/order-stock/:id
func (h *InventoryHandler) DeleteOrderStock(c *gin.Context) {
	if err := h.svc.DeleteOrderStock(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete replenishment order")
		return
	}
	httputil.Success(c, gin.H{"message": "replenishment order deleted"})
}
