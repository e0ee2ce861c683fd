package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/sherryhehe/fashion-api/controllers/product"
)

func SetupProductRoutes(r *gin.Engine, d *Deps) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(d.Products))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))
	}
}
