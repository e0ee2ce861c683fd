package reviewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GET /products/:id/reviews
// Returns the merged review set: embedded plus collection-stored.
func GetProductReviews(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		views, err := reviews.ProductReviews(c.Request.Context(), productID)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// POST /products/:id/reviews
func AddReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input services.ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := reviews.AddReview(c.Request.Context(), productID, c.GetString("user_id"), input)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// POST /admin/products/:id/reviews/embedded
// Legacy import path: writes the review into the product document itself.
func AddEmbeddedReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input struct {
			services.ReviewInput
			Verified bool `json:"verified"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := reviews.AddEmbeddedReview(c.Request.Context(), productID, input.ReviewInput, input.Verified)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// PUT /products/:id/reviews/:reviewID
// The review may live in either store; the service probes both.
func UpdateReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		reviewID := c.Param("reviewID")
		if reviewID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID is required"})
			return
		}

		var input services.ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		review, err := reviews.UpdateReview(c.Request.Context(), productID, reviewID, input)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}

// DELETE /products/:id/reviews/:reviewID
// The review may live in either store; the service probes both.
func DeleteReview(reviews *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		reviewID := c.Param("reviewID")
		if reviewID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Review ID is required"})
			return
		}

		if err := reviews.DeleteReview(c.Request.Context(), productID, reviewID); err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
