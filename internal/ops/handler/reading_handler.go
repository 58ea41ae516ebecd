package handler

import (
	"time"

	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// ReadingHandler sensor log endpoints
type ReadingHandler struct {
	svc *service.ReadingService
}

func NewReadingHandler(svc *service.ReadingService) *ReadingHandler {
	return &ReadingHandler{svc: svc}
}

// CreateReading stores one sensor sample
// POST /api/v1/readings
func (h *ReadingHandler) CreateReading(c *gin.Context) {
	var req service.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid reading payload: "+err.Error())
		return
	}

	reading, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create reading")
		return
	}

	httputil.Created(c, reading)
}

// ListReadings sensor samples, newest first
// GET /api/v1/readings?plant_name=Fern&category=greenhouse&from=2026-01-01
func (h *ReadingHandler) ListReadings(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.BadRequest(c, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httputil.BadRequest(c, "invalid to date, expected YYYY-MM-DD")
			return
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("plant_name"), c.Query("category"), from, to)
	if err != nil {
		httputil.Fail(c, err, "list readings")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetReading one sample
// GET /api/v1/readings/:id
func (h *ReadingHandler) GetReading(c *gin.Context) {
	reading, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get reading")
		return
	}
	httputil.Success(c, reading)
}

// DeleteReading removes a sample
// DELETE /api/v1/readings/:id
func (h *ReadingHandler) DeleteReading(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete reading")
		return
	}
	httputil.Success(c, gin.H{"message": "reading deleted"})
}
