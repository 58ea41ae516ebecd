package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/support/service"
	"github.com/gin-gonic/gin"
)

// ReviewHandler plant review endpoints
type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ListReviews review list
// GET /api/v1/reviews?plant_name=xxx&page=1&page_size=20
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)
	plantName := c.Query("plant_name")

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, plantName)
	if err != nil {
		httputil.Fail(c, err, "list reviews")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetReview review detail
// GET /api/v1/reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id := c.Param("id")
	review, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.Fail(c, err, "get review")
		return
	}
	httputil.Success(c, review)
}

// CreateReview creates a review
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req service.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid review payload: "+err.Error())
		return
	}

	review, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create review")
		return
	}

	httputil.Created(c, review)
}

// UpdateReview updates a review
// PUT /api/v1/reviews/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id := c.Param("id")
	var req service.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid review payload: "+err.Error())
		return
	}

	review, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		httputil.Fail(c, err, "update review")
		return
	}

	httputil.Success(c, review)
}

// DeleteReview deletes a review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httputil.Fail(c, err, "delete review")
		return
	}
	httputil.Success(c, gin.H{"message": "review deleted"})
}

// UploadPhoto attaches a photo to a review
// POST /api/v1/reviews/:id/photo
func (h *ReviewHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httputil.BadRequest(c, "no file uploaded: "+err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.InternalError(c, "open uploaded file failed")
		return
	}
	defer file.Close()

	review, err := h.svc.AttachPhoto(
		c.Request.Context(), id, file,
		fileHeader.Filename, fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		httputil.Fail(c, err, "upload review photo")
		return
	}

	httputil.Success(c, review)
}
