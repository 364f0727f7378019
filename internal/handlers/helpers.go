package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"candleshop/internal/repository"
)

const requestTimeout = 5 * time.Second

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func ensureDBConnection(ctx context.Context, db *mongo.Database) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Client().Ping(checkCtx, readpref.Primary())
}

func respondWithError(c *gin.Context, status int, route string, message string) {
	log.Printf("[%s] returning error %d: %s", route, status, message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondRepoError maps repository failures onto the HTTP taxonomy: missing
// fields and the active-hero guard are 400, unmatched lookups 404, anything
// else a generic 500 with the detail kept in the log only.
func respondRepoError(c *gin.Context, route, entity string, err error) {
	var vErr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrActiveHero):
		respondWithError(c, http.StatusBadRequest, route, "Cannot delete the active hero section")
	case errors.As(err, &vErr):
		if vErr.Field == "id" && vErr.Reason == "" {
			respondWithError(c, http.StatusBadRequest, route, entity+" ID is required")
			return
		}
		respondWithError(c, http.StatusBadRequest, route, vErr.Error())
	case errors.Is(err, repository.ErrNotFound):
		respondWithError(c, http.StatusNotFound, route, entity+" not found")
	default:
		log.Printf("[%s] internal error: %v", route, err)
		respondWithError(c, http.StatusInternalServerError, route, "Internal server error")
	}
}
