package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/sherryhehe/fashion-api/controllers/catalog"
	"github.com/sherryhehe/fashion-api/services"
)

// The brand, category and style surfaces are identical; register each group
// with its dimension baked in.
func SetupCatalogRoutes(r *gin.Engine, d *Deps) {
	for path, dim := range map[string]services.Dimension{
		"/brands":     services.DimensionBrand,
		"/categories": services.DimensionCategory,
		"/styles":     services.DimensionStyle,
	} {
		r.GET(path, catalogControllers.ListEntities(d.Catalog, dim))
	}
}
