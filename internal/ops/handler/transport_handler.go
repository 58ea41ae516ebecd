package handler

import (
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/httputil"
	"github.com/Thamidu-Peiris/CRIPS-sub002/internal/ops/service"
	"github.com/gin-gonic/gin"
)

// TransportHandler route planning endpoints
type TransportHandler struct {
	svc *service.TransportService
}

func NewTransportHandler(svc *service.TransportService) *TransportHandler {
	return &TransportHandler{svc: svc}
}

// OptimizeRouteRequest route input
type OptimizeRouteRequest struct {
	Locations []string `json:"locations" binding:"required"`
}

// OptimizeRoute orders delivery stops
// POST /api/v1/transport/optimize-route
func (h *TransportHandler) OptimizeRoute(c *gin.Context) {
	var req OptimizeRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.BadRequest(c, "invalid route payload: "+err.Error())
		return
	}

	optimized, err := h.svc.OptimizeRoute(req.Locations)
	if err != nil {
		httputil.Fail(c, err, "optimize route")
		return
	}

	httputil.Success(c, gin.H{"optimized": optimized})
}
