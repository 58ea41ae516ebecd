package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
	"github.com/gin-gonic/gin"
)

// FAQHandler FAQ endpoints
type FAQHandler struct {
	svc *service.FAQService
}

func NewFAQHandler(svc *service.FAQService) *FAQHandler {
	return &FAQHandler{svc: svc}
}

// ListFAQs FAQ list
// GET /api/v1/faqs
func (h *FAQHandler) ListFAQs(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		httputil.Fail(c, err, "list faqs")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// CreateFAQ creates an FAQ entry
// POST /api/v1/faqs
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req service.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid faq payload: "+err.Error())
		return
	}

	faq, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create faq")
		return
	}

	httputil.Created(c, faq)
}

// UpdateFAQ updates an FAQ entry
// PUT /api/v1/faqs/:id
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid faq payload: "+err.Error())
		return
	}

	faq, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Fail(c, err, "update faq")
		return
	}

	httputil.Success(c, faq)
}

// DeleteFAQ deletes an FAQ entry
// DELETE /api/v1/faqs/:id
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httputil.Fail(c, err, "delete faq")
		return
	}
	httputil.Success(c, gin.H{"message": "faq deleted"})
}
