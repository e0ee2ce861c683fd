package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/repository"
)

// GetProducts lists active products with search, dimension and price filters
// plus pagination.
func GetProducts(products *repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := repository.ProductFilter{
			Search:    c.Query("search"),
			Category:  c.Query("category"),
			Brand:     c.Query("brand"),
			Style:     c.Query("style"),
			SortBy:    c.DefaultQuery("sort_by", "createdAt"),
			SortOrder: strings.ToLower(c.DefaultQuery("order", "desc")),
		}
		if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
			filter.SortOrder = "desc"
		}

		if v := c.Query("min_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = &mp
		}
		if v := c.Query("max_price"); v != "" {
			mp, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = &mp
		}
		if v := c.Query("page"); v != "" {
			if page, err := strconv.ParseInt(v, 10, 64); err == nil {
				filter.Page = page
			}
		}
		if v := c.Query("limit"); v != "" {
			if limit, err := strconv.ParseInt(v, 10, 64); err == nil {
				filter.Limit = limit
			}
		}

		items, total, err := products.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": items,
			"total":    total,
		})
	}
}
