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

type ActivateHeroRequest struct {
	ID string `json:"id"`
}

/*
GET /hero-sections
- public, sorted by createdAt ascending
*/
func GetHeroSections(repo *repository.Heroes) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /hero-sections"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		sections, err := repo.List(ctx)
		if err != nil {
			respondRepoError(c, route, "Hero section", err)
			return
		}

		log.Printf("[%s] returning %d hero sections", route, len(sections))
		c.JSON(http.StatusOK, sections)
	}
}

/*
POST /hero-sections
- admin only; new sections always start inactive
*/
func CreateHeroSection(repo *repository.Heroes) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /hero-sections"
		defer handlePanic(c, route)

		var section models.HeroSection
		if err := c.ShouldBindJSON(&section); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		created, err := repo.Create(ctx, section)
		if err != nil {
			respondRepoError(c, route, "Hero section", err)
			return
		}

		log.Printf("[%s] created hero section %s", route, created.ID)
		c.JSON(http.StatusCreated, created)
	}
}

/*
PUT /hero-sections
- admin only; id in the body, active flag untouched
*/
func UpdateHeroSection(repo *repository.Heroes) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /hero-sections"
		defer handlePanic(c, route)

		var section models.HeroSection
		if err := c.ShouldBindJSON(&section); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if strings.TrimSpace(section.ID) == "" {
			respondWithError(c, http.StatusBadRequest, route, "Hero section ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		updated, err := repo.Update(ctx, section.ID, section)
		if err != nil {
			respondRepoError(c, route, "Hero section", err)
			return
		}

		log.Printf("[%s] updated hero section %s", route, updated.ID)
		c.JSON(http.StatusOK, updated)
	}
}

/*
DELETE /hero-sections?id=
- admin only; the active section is protected from deletion
*/
func DeleteHeroSection(repo *repository.Heroes) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /hero-sections"
		defer handlePanic(c, route)

		id := strings.TrimSpace(c.Query("id"))
		if id == "" {
			respondWithError(c, http.StatusBadRequest, route, "Hero section ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		if err := repo.Delete(ctx, id); err != nil {
			respondRepoError(c, route, "Hero section", err)
			return
		}

		log.Printf("[%s] deleted hero section %s", route, id)
		c.JSON(http.StatusOK, gin.H{"success": true, "deletedId": id})
	}
}

/*
POST /hero-sections/activate
- admin only; flips the single active flag and returns the full listing
*/
func ActivateHeroSection(repo *repository.Heroes) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /hero-sections/activate"
		defer handlePanic(c, route)

		var req ActivateHeroRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Printf("[%s] bind error: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if strings.TrimSpace(req.ID) == "" {
			respondWithError(c, http.StatusBadRequest, route, "Hero section ID is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
		defer cancel()

		sections, err := repo.Activate(ctx, req.ID)
		if err != nil {
			respondRepoError(c, route, "Hero section", err)
			return
		}

		log.Printf("[%s] activated hero section %s", route, req.ID)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"activatedId":  req.ID,
			"heroSections": sections,
		})
	}
}
