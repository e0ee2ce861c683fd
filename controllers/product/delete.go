package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteProduct removes a product and reconciles the counters of every
// dimension the product used to occupy, using its former values.
func DeleteProduct(products *repository.ProductRepository, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Fetch first: the deleted product's former dimension values drive
		// the reconciliation below.
		product, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Product not found"})
			return
		}

		if err := products.Delete(c.Request.Context(), id); err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Failed to delete product"})
			return
		}

		catalog.ReconcileProduct(c.Request.Context(), product, nil)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
