package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/sales/service"
	"github.com/gin-gonic/gin"
)

// VisitorHandler storefront traffic endpoints
type VisitorHandler struct {
	svc *service.VisitorService
}

func NewVisitorHandler(svc *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{svc: svc}
}

// RecordVisit stamps one storefront visit
// POST /api/v1/visitors
func (h *VisitorHandler) RecordVisit(c *gin.Context) {
	visit, err := h.svc.Record(c.Request.Context(), c.ClientIP())
	if err != nil {
		httputil.Fail(c, err, "record visit")
		return
	}
	httputil.Created(c, visit)
}

// GetVisitStats visit counts bucketed by day, month or year
// GET /api/v1/dashboard/visitors?granularity=day&from=2026-01-01&to=2026-01-31
func (h *VisitorHandler) GetVisitStats(c *gin.Context) {
	granularity := c.DefaultQuery("granularity", "day")
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}

	buckets, err := h.svc.Buckets(c.Request.Context(), granularity, from, to)
	if err != nil {
		httputil.Fail(c, err, "visit stats")
		return
	}

	total, err := h.svc.Total(c.Request.Context())
	if err != nil {
		httputil.Fail(c, err, "visit stats")
		return
	}

	httputil.Success(c, gin.H{
		"granularity": granularity,
		"total":       total,
		"buckets":     buckets,
	})
}
