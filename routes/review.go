package routes

import (
	"github.com/gin-gonic/gin"
	reviewControllers "github.com/sherryhehe/fashion-api/controllers/review"
	"github.com/sherryhehe/fashion-api/middleware"
)

func SetupReviewRoutes(r *gin.Engine, d *Deps) {
	// Reading reviews is public.
	r.GET("/products/:id/reviews", reviewControllers.GetProductReviews(d.Reviews))

	// Writing requires a signed-in user.
	authed := r.Group("/")
	authed.Use(middleware.ValidateToken)
	{
		authed.POST("/products/:id/reviews", reviewControllers.AddReview(d.Reviews))
		authed.PUT("/products/:id/reviews/:reviewID", reviewControllers.UpdateReview(d.Reviews))
		authed.DELETE("/products/:id/reviews/:reviewID", reviewControllers.DeleteReview(d.Reviews))
	}
}
