package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductUpdateInput struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	Brand         *string   `json:"brand"`
	Style         *string   `json:"style"`
	Price         *float64  `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Discount      *float64  `json:"discount"`
	Stock         *int      `json:"stock"`
	Sizes         *[]string `json:"sizes"`
	Colors        *[]string `json:"colors"`
	Images        *[]string `json:"images"`
	IsActive      *bool     `json:"is_active"`
}

// UpdateProduct applies a partial update. Dimension fields that actually
// changed get both their old and new buckets reconciled, because the product
// moved between them.
func UpdateProduct(products *repository.ProductRepository, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := products.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Product not found"})
			return
		}
		prev := *product

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Style != nil {
			product.Style = *input.Style
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
				return
			}
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = *input.OriginalPrice
		}
		if input.Discount != nil {
			product.Discount = *input.Discount
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := products.Update(c.Request.Context(), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		catalog.ReconcileProduct(c.Request.Context(), &prev, product)
		if prev.IsActive != product.IsActive {
			// Toggling visibility changes the live counts even though no
			// dimension name moved.
			for _, dim := range services.Dimensions {
				if name := services.DimensionValue(product, dim); name != "" {
					if err := catalog.ReconcileCount(c.Request.Context(), dim, name); err != nil {
						log.Printf("⚠️ products: reconcile %s %q failed: %v", dim, name, err)
					}
				}
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
