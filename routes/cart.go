package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/sherryhehe/fashion-api/controllers/cart"
	"github.com/sherryhehe/fashion-api/middleware"
)

func SetupCartRoutes(r *gin.Engine, d *Deps) {
	cart := r.Group("/user/cart")
	cart.Use(middleware.ValidateToken)
	{
		cart.GET("", cartControllers.GetUserCart(d.OrderFlow))
		cart.POST("", cartControllers.UpdateCartItem(d.Carts, d.Products))
		cart.DELETE("", cartControllers.ClearUserCart(d.Carts))
		cart.DELETE("/:product_id", cartControllers.DeleteCartItem(d.Carts))
	}
}
