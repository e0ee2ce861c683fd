package catalogControllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sherryhehe/fashion-api/models"
	"github.com/sherryhehe/fashion-api/repository"
	"github.com/sherryhehe/fashion-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// One controller serves brands, categories and styles; the dimension is fixed
// at route-registration time.

type EntityInput struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}

// GET /:dimension
func ListEntities(catalog *repository.CatalogRepository, dim services.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		entities, err := catalog.List(c.Request.Context(), dim)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + string(dim) + " list"})
			return
		}
		c.JSON(http.StatusOK, entities)
	}
}

// POST /admin/:dimension
func CreateEntity(catalog *repository.CatalogRepository, counters *services.CatalogService, dim services.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EntityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		name := strings.TrimSpace(input.Name)
		if _, err := catalog.FindByName(c.Request.Context(), dim, name); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": string(dim) + " already exists"})
			return
		}

		now := time.Now()
		entity := models.CatalogEntity{
			Name:        name,
			Slug:        slugify(name),
			Image:       input.Image,
			Description: input.Description,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := catalog.Insert(c.Request.Context(), dim, &entity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + string(dim)})
			return
		}

		// Products created before the entity existed may already carry this
		// name; pick their count up immediately.
		if err := counters.ReconcileCount(c.Request.Context(), dim, entity.Name); err != nil {
			log.Printf("⚠️ catalog: initial count for %s %q failed: %v", dim, entity.Name, err)
		}

		c.JSON(http.StatusCreated, entity)
	}
}

// PUT /admin/:dimension/:id
func UpdateEntity(catalog *repository.CatalogRepository, counters *services.CatalogService, dim services.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + string(dim) + " ID"})
			return
		}

		entity, err := catalog.FindByID(c.Request.Context(), dim, id)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": string(dim) + " not found"})
			return
		}

		var input EntityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		renamed := false
		if name := strings.TrimSpace(input.Name); name != "" && name != entity.Name {
			entity.Name = name
			entity.Slug = slugify(name)
			renamed = true
		}
		if input.Image != "" {
			entity.Image = input.Image
		}
		if input.Description != "" {
			entity.Description = input.Description
		}

		if err := catalog.Update(c.Request.Context(), dim, entity); err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Failed to update " + string(dim)})
			return
		}

		if renamed {
			// Products keep referencing the old name string; the rename does
			// not cascade. Recount under the new name so the entity does not
			// keep displaying the orphaned figure.
			if err := counters.ReconcileCount(c.Request.Context(), dim, entity.Name); err != nil {
				log.Printf("⚠️ catalog: recount after rename of %s %q failed: %v", dim, entity.Name, err)
			}
		}

		c.JSON(http.StatusOK, entity)
	}
}

// DELETE /admin/:dimension/:id
func DeleteEntity(catalog *repository.CatalogRepository, dim services.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + string(dim) + " ID"})
			return
		}

		if err := catalog.Delete(c.Request.Context(), dim, id); err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Failed to delete " + string(dim)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": string(dim) + " deleted successfully"})
	}
}

// POST /admin/:dimension/:id/reconcile
// Manual recount for when an admin suspects a stale figure.
func ReconcileEntity(catalog *repository.CatalogRepository, counters *services.CatalogService, dim services.Dimension) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + string(dim) + " ID"})
			return
		}

		entity, err := catalog.FindByID(c.Request.Context(), dim, id)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": string(dim) + " not found"})
			return
		}

		if err := counters.ReconcileCount(c.Request.Context(), dim, entity.Name); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile count"})
			return
		}

		entity, err = catalog.FindByID(c.Request.Context(), dim, id)
		if err != nil {
			c.JSON(services.HTTPStatus(err), gin.H{"error": "Failed to re-read " + string(dim)})
			return
		}
		c.JSON(http.StatusOK, entity)
	}
}
