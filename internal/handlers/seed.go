package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"candleshop/internal/content"
	"candleshop/internal/repository"
)

/*
POST /seed
- admin only
- resets both collections to the canonical default content
*/
func Seed(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /seed"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "Internal server error")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		inserted, err := repository.Seed(ctx, db, content.DefaultProducts(), content.DefaultHero())
		if err != nil {
			log.Printf("[%s] seed error: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Internal server error")
			return
		}

		log.Printf("[%s] seeded %d products and 1 hero section", route, inserted)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Database seeded successfully",
			"products":     inserted,
			"heroSections": 1,
		})
	}
}
