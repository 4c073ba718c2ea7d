package controllers

import (
	"net/http"

	"birthdaywish-backend/models"
	"birthdaywish-backend/services"
	"birthdaywish-backend/utils"

	"github.com/gin-gonic/gin"
)

type GenerateMessageInput struct {
	Name         string `json:"name" binding:"required"`
	Tone         string `json:"tone"`
	BusinessName string `json:"businessName"`
}

// MessageController exposes on-demand message generation
type MessageController struct {
	Composer services.MessageComposer
}

// GenerateMessage previews a birthday message without sending anything
func (mc *MessageController) GenerateMessage(c *gin.Context) {
	var input GenerateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Customer name is required")
		return
	}

	tone := input.Tone
	if tone == "" {
		tone = models.ToneFriendly
	}
	businessName := input.BusinessName
	if businessName == "" {
		businessName = models.DefaultBusinessName
	}

	message, usedFallback := mc.Composer.ComposeBirthdayMessage(input.Name, tone, businessName)

	c.JSON(http.StatusOK, gin.H{
		"message":  message,
		"fallback": usedFallback,
	})
}
