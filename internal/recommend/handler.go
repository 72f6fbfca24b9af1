package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/shared/server/respond"
)

// Handler exposes the recommendation HTTP endpoint.
type Handler struct {
	Service *Service
}

// RegisterRoutes registers recommendation routes on the group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommend", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body must be valid JSON", nil)
		return
	}

	res, err := h.Service.Recommend(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
		case errors.Is(err, ErrModelUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, "model_unavailable", "no trained model is available yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "could not classify input", nil)
		}
		return
	}

	// Surfaced in the request-completion log line.
	c.Set("predictionSource", res.Source)
	c.Set("predictedLabel", res.Component)

	respond.OK(c, toResponse(res))
}
