package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/gin-gonic/gin"
)

// DashboardHandler sales reporting endpoints
type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary aggregated sales figures
// GET /api/v1/dashboard/sales?from=2026-01-01&to=2026-01-31
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), from, to)
	if err != nil {
		httputil.Fail(c, err, "dashboard summary")
		return
	}

	httputil.Success(c, summary)
}

// GetOrderCounts per-status order counts
// GET /api/v1/dashboard/orders?from=2026-01-01&to=2026-01-31
func (h *DashboardHandler) GetOrderCounts(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	counts, err := h.svc.OrderCountsByStatus(c.Request.Context(), from, to)
	if err != nil {
		httputil.Fail(c, err, "dashboard order counts")
		return
	}

	httputil.Success(c, gin.H{"counts": counts})
}

// ExportOrders streams the orders within the window as an xlsx workbook
// GET /api/v1/dashboard/orders/export
func (h *DashboardHandler) ExportOrders(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	f, err := h.svc.ExportOrders(c.Request.Context(), from, to)
	if err != nil {
		httputil.Fail(c, err, "export orders")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		httputil.InternalError(c, "failed to write workbook")
		return
	}
}
