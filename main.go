package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"candleshop/internal/ai"
	"candleshop/internal/config"
	"candleshop/internal/database"
	"candleshop/internal/handlers"
	"candleshop/internal/middleware"
	"candleshop/internal/repository"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(cfg.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("⚠️ product index warning: %v", err)
	}
	if err := database.EnsureHeroIndexes(db); err != nil {
		log.Printf("⚠️ hero index warning: %v", err)
	}

	products := repository.NewProducts(db, cfg.CategoryMode == config.CategoryModeStrict)
	heroes := repository.NewHeroes(db)
	aiClient := ai.NewClient(cfg.AzureOpenAI)

	if !aiClient.Configured() {
		log.Println("AI generation disabled: Azure OpenAI config incomplete")
	}

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	r.GET("/healthz", handlers.Healthz(db))

	r.GET("/products", handlers.GetProducts(products))
	r.GET("/hero-sections", handlers.GetHeroSections(heroes))

	adminGate := middleware.AdminAuth(cfg.AdminUsername, cfg.AdminPassword)

	mutating := r.Group("/", adminGate)
	{
		mutating.POST("/products", handlers.CreateProduct(products))
		mutating.PUT("/products", handlers.UpdateProduct(products))
		mutating.DELETE("/products", handlers.DeleteProduct(products))

		mutating.POST("/hero-sections", handlers.CreateHeroSection(heroes))
		mutating.PUT("/hero-sections", handlers.UpdateHeroSection(heroes))
		mutating.DELETE("/hero-sections", handlers.DeleteHeroSection(heroes))
		mutating.POST("/hero-sections/activate", handlers.ActivateHeroSection(heroes))

		mutating.POST("/seed", handlers.Seed(db))
		mutating.POST("/generate-product", handlers.GenerateProduct(aiClient))
	}

	r.Run(":" + cfg.Port)
}
