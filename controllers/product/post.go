package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/models"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Style         string   `json:"style"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice float64  `json:"original_price"`
	Discount      float64  `json:"discount"`
	Stock         int      `json:"stock"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
}

// CreateProduct creates a product and reconciles the catalog counters for
// every dimension the new product lands in.
func CreateProduct(products *repository.ProductRepository, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		now := time.Now()
		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Category:      input.Category,
			Brand:         input.Brand,
			Style:         input.Style,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Discount:      input.Discount,
			Stock:         input.Stock,
			Sizes:         input.Sizes,
			Colors:        input.Colors,
			Images:        input.Images,
			Reviews:       []models.EmbeddedReview{},
			IsActive:      true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := products.Insert(c.Request.Context(), &product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		// Counters are advisory; reconciliation failures are logged inside
		// and never fail the request.
		catalog.ReconcileProduct(c.Request.Context(), nil, &product)

		c.JSON(http.StatusCreated, product)
	}
}
