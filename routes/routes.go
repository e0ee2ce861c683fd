package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
)

// Deps bundles everything the route groups hand to their handlers.
type Deps struct {
	Products *repository.ProductRepository
	Catalog  *repository.CatalogRepository
	Carts    *repository.CartRepository
	Orders   *repository.OrderRepository

	Counters  *services.CatalogService
	Reviews   *services.ReviewService
	OrderFlow *services.OrderService
}

// SetupRoutes is the single entry-point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, d *Deps) {
	// 1️⃣ Public storefront routes (no middleware)
	SetupProductRoutes(r, d)
	SetupCatalogRoutes(r, d)
	SetupReviewRoutes(r, d)

	// 2️⃣ User routes (JWT-protected)
	SetupCartRoutes(r, d)

	// 3️⃣ Order routes (mixed user/admin)
	SetupOrderRoutes(r, d)

	// 4️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, d)
}
