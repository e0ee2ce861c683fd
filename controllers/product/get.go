package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			status := services.HTTPStatus(err)
			if status == http.StatusNotFound {
				c.JSON(status, gin.H{"error": "Product not found"})
			} else {
				c.JSON(status, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
