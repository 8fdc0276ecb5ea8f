package handlers

import (
	"errors"
	"net/http"

	"github.com/brandoline/Kanbanize.me/internal/database"
	"github.com/brandoline/Kanbanize.me/internal/models"
	"github.com/brandoline/Kanbanize.me/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SaveCategoryRequest represents the payload for creating or updating a
// category
type SaveCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// GetCategories handles GET /api/categories
// Lists the user's categories in creation order, provisioning the
// default set when none exist yet. Clients load categories before
// tasks so category defaulting is meaningful.
func GetCategories(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	db := database.GetDB()

	var categories []models.Category
	if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	if len(categories) == 0 {
		for _, def := range models.DefaultCategories() {
			def.ID = uuid.NewString()
			def.UserID = userID
			if err := db.Create(&def).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision default categories"})
				return
			}
			categories = append(categories, def)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// CreateCategory handles POST /api/categories
func CreateCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		ID:     uuid.NewString(),
		Name:   req.Name,
		Color:  req.Color,
		UserID: userID,
	}
	if err := database.GetDB().Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	realtime.GetHub().Notify("category_created", "category", category.ID, userID)

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/categories/:id
func UpdateCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	categoryID := c.Param("id")
	var category models.Category
	result := database.GetDB().Where("id = ? AND user_id = ?", categoryID, userID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		}
		return
	}

	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category.Name = req.Name
	if req.Color != "" {
		category.Color = req.Color
	}
	if err := database.GetDB().Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	realtime.GetHub().Notify("category_updated", "category", category.ID, userID)

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categories/:id
// Deleting the last remaining category is rejected. Otherwise every
// task referencing the category is reassigned to the first remaining
// one before the delete, and the response names that replacement so
// the client can re-point its active category.
func DeleteCategory(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return
	}

	categoryID := c.Param("id")
	db := database.GetDB()

	var category models.Category
	result := db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
		}
		return
	}

	var total int64
	if err := db.Model(&models.Category{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count categories"})
		return
	}
	if total <= 1 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete the last category"})
		return
	}

	var replacement models.Category
	err := db.Where("user_id = ? AND id <> ?", userID, categoryID).
		Order("created_at asc").First(&replacement).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find replacement category"})
		return
	}

	// Reassign before deleting so no task is ever orphaned
	err = db.Model(&models.Task{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Updates(map[string]any{"category_id": replacement.ID, "last_updated": stampNow()}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reassign tasks"})
		return
	}

	if err := db.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	realtime.GetHub().Notify("category_deleted", "category", categoryID, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":            "Category deleted successfully",
		"id":                 categoryID,
		"reassignedCategory": replacement,
	})
}
