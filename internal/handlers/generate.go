package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"candleshop/internal/ai"
)

type GenerateProductRequest struct {
	Description string `json:"description"`
}

/*
POST /generate-product
- admin only
- 503 when the AI helper is not configured; everything else is unaffected
*/
func GenerateProduct(client *ai.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /generate-product"
		defer handlePanic(c, route)

		if !client.Configured() {
			respondWithError(c, http.StatusServiceUnavailable, route, "AI generation is not configured")
			return
		}

		var req GenerateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		description := strings.TrimSpace(req.Description)
		if description == "" {
			respondWithError(c, http.StatusBadRequest, route, "description is required")
			return
		}

		generated, err := client.GenerateProduct(c.Request.Context(), description)
		if err != nil {
			log.Printf("[%s] generation error: %v", route, err)
			respondWithError(c, http.StatusBadGateway, route, "product generation failed")
			return
		}

		c.JSON(http.StatusOK, generated)
	}
}
