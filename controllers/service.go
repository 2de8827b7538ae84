// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"riyadh-travel-backend/config"
	"riyadh-travel-backend/models"
	"riyadh-travel-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Title         string            `json:"title" binding:"required"`
	TitleAr       string            `json:"titleAr" binding:"required"`
	Description   string            `json:"description" binding:"required"`
	DescriptionAr string            `json:"descriptionAr" binding:"required"`
	Category      string            `json:"category" binding:"required"`
	Price         float64           `json:"price" binding:"min=0"`
	Duration      string            `json:"duration"`
	Requirements  models.StringList `json:"requirements"`
	Features      models.StringList `json:"features"`
	ImageURL      string            `json:"imageUrl"`
	DisplayOrder  int               `json:"order"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Title         *string            `json:"title"`
	TitleAr       *string            `json:"titleAr"`
	Description   *string            `json:"description"`
	DescriptionAr *string            `json:"descriptionAr"`
	Category      *string            `json:"category"`
	Price         *float64           `json:"price"`
	Duration      *string            `json:"duration"`
	Requirements  *models.StringList `json:"requirements"`
	Features      *models.StringList `json:"features"`
	ImageURL      *string            `json:"imageUrl"`
	IsActive      *bool              `json:"isActive"`
	DisplayOrder  *int               `json:"order"`
}

// GetServices retrieves the catalog, filtered by category, active flag
// and free-text search
func GetServices(c *gin.Context) {
	query := config.DB.Model(&models.Service{})

	if category := c.Query("category"); category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"title ILIKE ? OR title_ar ILIKE ? OR description ILIKE ? OR description_ar ILIKE ?",
			like, like, like, like)
	}

	var services []models.Service
	if err := query.Order("display_order ASC, created_at DESC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(services),
		"services": services,
	})
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": service,
	})
}

// CreateService creates a new catalog entry (admin)
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.IsValidCategory(input.Category) {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "category", Message: "Category must be one of: documents, travel, labor, visas, government, processing"},
		})
		return
	}

	service := models.Service{
		Title:         input.Title,
		TitleAr:       input.TitleAr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		Category:      input.Category,
		Price:         input.Price,
		Duration:      input.Duration,
		Requirements:  input.Requirements,
		Features:      input.Features,
		ImageURL:      input.ImageURL,
		IsActive:      true,
		DisplayOrder:  input.DisplayOrder,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"service": service,
		"message": "Service created successfully",
	})
}

// UpdateService partially updates an existing service (admin)
func UpdateService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Category != nil && !models.IsValidCategory(*input.Category) {
		utils.RespondWithValidationErrors(c, []utils.FieldError{
			{Field: "category", Message: "Category must be one of: documents, travel, labor, visas, government, processing"},
		})
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.TitleAr != nil {
		service.TitleAr = *input.TitleAr
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DescriptionAr != nil {
		service.DescriptionAr = *input.DescriptionAr
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Duration != nil {
		service.Duration = *input.Duration
	}
	if input.Requirements != nil {
		service.Requirements = *input.Requirements
	}
	if input.Features != nil {
		service.Features = *input.Features
	}
	if input.ImageURL != nil {
		service.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.DisplayOrder != nil {
		service.DisplayOrder = *input.DisplayOrder
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"service": service,
		"message": "Service updated successfully",
	})
}

// DeleteService removes a service (admin). Existing bookings keep their
// snapshotted titles.
func DeleteService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	result := config.DB.Where("id = ?", serviceID).Delete(&models.Service{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service deleted successfully",
	})
}
