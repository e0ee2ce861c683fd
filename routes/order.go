package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/sherryhehe/fashion-api/controllers/order"
	"github.com/sherryhehe/fashion-api/middleware"
)

func SetupOrderRoutes(r *gin.Engine, d *Deps) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates (admin dashboards)
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// User endpoints
		authed := orders.Group("/")
		authed.Use(middleware.ValidateToken)
		{
			authed.POST("/checkout", orderControllers.CheckoutHandler(d.OrderFlow))
			authed.GET("/my", orderControllers.GetUserOrdersHandler(d.Orders))
			authed.POST("/:orderID/cancel", orderControllers.CancelOrderHandler(d.OrderFlow))
		}

		// Admin endpoints
		admin := orders.Group("/")
		admin.Use(middleware.ValidateAPIKey)
		{
			admin.GET("", orderControllers.GetAllOrdersHandler(d.Orders))
			admin.GET("/:orderID", orderControllers.GetOrderByIDHandler(d.Orders))
			admin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.OrderFlow))
			admin.PUT("/:orderID/payment-status", orderControllers.UpdatePaymentStatusHandler(d.OrderFlow))
			admin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(d.Orders))
		}
	}
}
