package knowledge

import (
	"github.com/gin-gonic/gin"

	"hardware-advisor/internal/shared/server/respond"
)

// Handler exposes the component catalog to the UI.
type Handler struct {
	Catalog *Catalog
}

// NewHandler constructs a Handler.
func NewHandler(catalog *Catalog) *Handler {
	return &Handler{Catalog: catalog}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/components", h.list)
}

type categoryListing struct {
	Category   string      `json:"category"`
	Components []Component `json:"components"`
}

func (h *Handler) list(c *gin.Context) {
	out := make([]categoryListing, 0, len(h.Catalog.Categories()))
	for _, cat := range h.Catalog.Categories() {
		listing := categoryListing{Category: string(cat)}
		for _, id := range h.Catalog.InCategory(cat) {
			comp, _ := h.Catalog.Get(id)
			listing.Components = append(listing.Components, comp)
		}
		out = append(out, listing)
	}
	respond.OK(c, gin.H{"categories": out})
}
