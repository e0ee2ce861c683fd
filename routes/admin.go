package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sherryhehe/fashion-api/controllers/cart"
	catalogControllers "github.com/sherryhehe/fashion-api/controllers/catalog"
	productcontroller "github.com/sherryhehe/fashion-api/controllers/product"
	reviewControllers "github.com/sherryhehe/fashion-api/controllers/review"
	"github.com/sherryhehe/fashion-api/middleware"
	"github.com/sherryhehe/fashion-api/services"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(d.Products))
			productAdmin.POST("", productcontroller.CreateProduct(d.Products, d.Counters))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Products, d.Counters))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Products, d.Counters))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Products))
			productAdmin.POST("/:id/reviews/embedded", reviewControllers.AddEmbeddedReview(d.Reviews))
		}

		// ─────────── Catalog Management ───────────
		for path, dim := range map[string]services.Dimension{
			"/brands":     services.DimensionBrand,
			"/categories": services.DimensionCategory,
			"/styles":     services.DimensionStyle,
		} {
			entityAdmin := adminGroup.Group(path)
			{
				entityAdmin.GET("", catalogControllers.ListEntities(d.Catalog, dim))
				entityAdmin.POST("", catalogControllers.CreateEntity(d.Catalog, d.Counters, dim))
				entityAdmin.PUT("/:id", catalogControllers.UpdateEntity(d.Catalog, d.Counters, dim))
				entityAdmin.DELETE("/:id", catalogControllers.DeleteEntity(d.Catalog, dim))
				entityAdmin.POST("/:id/reconcile", catalogControllers.ReconcileEntity(d.Catalog, d.Counters, dim))
			}
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(d.Carts))
		}
	}
}
