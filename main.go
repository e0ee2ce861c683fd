package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/config"
	"github.com/sherryhehe/fashion-api/database"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/routes"
	"github.com/sherryhehe/fashion-api/services"
)

func main() {
	log.Println("✅ Starting application...")

	cfg := config.Load()

	// Init store
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	colls := database.NewCollections(db)

	// Repositories
	products := repository.NewProductRepository(colls.Products)
	catalog := repository.NewCatalogRepository(colls.Brands, colls.Categories, colls.Styles)
	reviews := repository.NewReviewRepository(colls.Reviews)
	carts := repository.NewCartRepository(colls.CartItems)
	orders := repository.NewOrderRepository(colls.Orders)

	// Services
	counters := services.NewCatalogService(products, catalog)
	reviewFlow := services.NewReviewService(products, reviews, orders)
	orderFlow := services.NewOrderService(carts, products, orders, services.Pricing{
		TaxRate:               cfg.Pricing.TaxRate,
		ShippingFee:           cfg.Pricing.ShippingFee,
		FreeShippingThreshold: cfg.Pricing.FreeShippingThreshold,
	})

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, &routes.Deps{
		Products:  products,
		Catalog:   catalog,
		Carts:     carts,
		Orders:    orders,
		Counters:  counters,
		Reviews:   reviewFlow,
		OrderFlow: orderFlow,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
