package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"candleshop/internal/models"
	"candleshop/internal/repository"
)

/*
GET /products
- public, no auth
- returns the full catalog in the store's natural order
*/
func GetProducts(repo *repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		products, err := repo.List(ctx)
		if err != nil {
			respondRepoError(c, route, "Product", err)
			return
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

/*
POST /products
- admin only
- id optional; one is assigned when absent and returned in the response
*/
func CreateProduct(repo *repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /products"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		created, err := repo.Create(ctx, product)
		if err != nil {
			respondRepoError(c, route, "Product", err)
			return
		}

		log.Printf("[%s] created product %s", route, created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

/*
PUT /products
- admin only
- id comes in the body and is immutable; every other field is replaced
*/
func UpdateProduct(repo *repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /products"
		defer handlePanic(c, route)

		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if strings.TrimSpace(product.ID) == "" {
			respondWithError(c, http.StatusBadRequest, route, "Product ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		updated, err := repo.Update(ctx, product.ID, product)
		if err != nil {
			respondRepoError(c, route, "Product", err)
			return
		}

		log.Printf("[%s] updated product %s", route, updated.ID)
		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /products?id=
- admin only, deletion is unconditional for products
*/
func DeleteProduct(repo *repository.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /products"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "Product ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			respondRepoError(c, route, "Product", err)
			return
		}

		log.Printf("[%s] deleted product %s", route, id)
		c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": id})
	}
}
