package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// PlantHandler catalog endpoints
type PlantHandler struct {
	svc *service.PlantService
}

func NewPlantHandler(svc *service.PlantService) *PlantHandler {
	return &PlantHandler{svc: svc}
}

// CreatePlant new catalog entry
// POST /api/v1/plants
func (h *PlantHandler) CreatePlant(c *gin.Context) {
	var req service.CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid plant payload: "+err.Error())
		return
	}

	plant, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Fail(c, err, "create plant")
		return
	}

	httputil.Created(c, plant)
}

// ListPlants catalog list with optional category/name filters
// GET /api/v1/plants?category=indoor&name=fern
func (h *PlantHandler) ListPlants(c *gin.Context) {
	page, pageSize := httputil.GetPagination(c)

	items, total, err := h.svc.List(c.Request.Context(), page, pageSize, c.Query("category"), c.Query("name"))
	if err != nil {
		httputil.Fail(c, err, "list plants")
		return
	}

	httputil.Success(c, httputil.ListResponse{
		Items:      items,
		Pagination: httputil.NewPagination(page, pageSize, total),
	})
}

// GetPlant catalog entry detail
// GET /api/v1/plants/:id
func (h *PlantHandler) GetPlant(c *gin.Context) {
	plant, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.Fail(c, err, "get plant")
		return
	}
	httputil.Success(c, plant)
}

// UpdatePlant partial update
// PUT /api/v1/plants/:id
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	var req service.UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid plant payload: "+err.Error())
		return
	}

	plant, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		httputil.Fail(c, err, "update plant")
		return
	}

	httputil.Success(c, plant)
}

// DeletePlant removes a catalog entry
// DELETE /api/v1/plants/:id
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.Fail(c, err, "delete plant")
		return
	}
	httputil.Success(c, gin.H{"message": "plant deleted"})
}
