package controllers

import (
	"net/http"
	"strings"

	"birthdaywish-backend/config"
	"birthdaywish-backend/models"
	"birthdaywish-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type UpdateProfileInput struct {
	BusinessName string `json:"businessName" binding:"required"`
}

func GetProfile(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var profile models.Profile
	if err := config.DB.First(&profile, "user_id = ?", userUUID).Error; err != nil {
		// No profile yet; messages will be signed with the default name
		c.JSON(http.StatusOK, gin.H{"businessName": models.DefaultBusinessName})
		return
	}

	c.JSON(http.StatusOK, gin.H{"businessName": profile.BusinessName})
}

func UpdateProfile(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	businessName := strings.TrimSpace(input.BusinessName)
	if businessName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Business name cannot be empty")
		return
	}

	profile := models.Profile{
		UserID:       userUUID,
		BusinessName: businessName,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"business_name", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
