package controllers

import (
	"errors"
	"net/http"
	"time"

	"birthdaywish-backend/config"
	"birthdaywish-backend/models"
	"birthdaywish-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateContactInput defines the expected JSON structure for creating a contact
type CreateContactInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
	DOB   string `json:"dob" binding:"required"` // YYYY-MM-DD, year may be a placeholder
	Tone  string `json:"tone"`
}

// UpdateContactInput defines the expected JSON structure for updating a contact
type UpdateContactInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	DOB   *string `json:"dob"`
	Tone  *string `json:"tone"`
}

func parseDOB(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// CreateContact creates a new contact for the authenticated user
func CreateContact(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address format")
		return
	}
	if !utils.ValidateTone(input.Tone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Tone must be friendly, professional or formal")
		return
	}
	dob, err := parseDOB(input.DOB)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format")
		return
	}

	contact := models.Contact{
		ID:     uuid.New(),
		UserID: userUUID,
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		DOB:    dob,
		Tone:   input.Tone,
	}
	if contact.Tone == "" {
		contact.Tone = models.ToneFriendly
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts retrieves all contacts for the authenticated user, newest first
func GetContacts(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var contacts []models.Contact
	if err := config.DB.Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// GetContact retrieves a single contact owned by the authenticated user
func GetContact(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var contact models.Contact
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userUUID).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact updates a contact owned by the authenticated user
func UpdateContact(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var contact models.Contact
	err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userUUID).
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input UpdateContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		contact.Name = *input.Name
	}
	if input.Email != nil {
		if !utils.ValidateEmail(*input.Email) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid email address format")
			return
		}
		contact.Email = *input.Email
	}
	if input.Phone != nil {
		contact.Phone = *input.Phone
	}
	if input.DOB != nil {
		dob, err := parseDOB(*input.DOB)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Date of birth must be in YYYY-MM-DD format")
			return
		}
		contact.DOB = dob
	}
	if input.Tone != nil {
		if !utils.ValidateTone(*input.Tone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Tone must be friendly, professional or formal")
			return
		}
		contact.Tone = *input.Tone
	}

	if err := config.DB.Save(&contact).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact removes a contact owned by the authenticated user
func DeleteContact(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userUUID).
		Delete(&models.Contact{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
