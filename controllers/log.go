package controllers

import (
	"net/http"
	"strconv"
	"time"

	"birthdaywish-backend/config"
	"birthdaywish-backend/models"
	"birthdaywish-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetLogs retrieves the email history for the authenticated user, newest
// first. Supports ?limit= (default 50) and ?status=sent|failed.
func GetLogs(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 50
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	query := config.DB.Where("user_id = ?", userUUID).
		Order("sent_at DESC").
		Limit(limit)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var logs []models.EmailLog
	if err := query.Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetLogStats aggregates send counts for the authenticated user
func GetLogStats(c *gin.Context) {
	userUUID, ok := currentUserID(c)
	if !ok {
		return
	}

	var totalSent, totalFailed, thisMonth int64

	config.DB.Model(&models.EmailLog{}).
		Where("user_id = ? AND status = ?", userUUID, models.StatusSent).
		Count(&totalSent)

	config.DB.Model(&models.EmailLog{}).
		Where("user_id = ? AND status = ?", userUUID, models.StatusFailed).
		Count(&totalFailed)

	firstOfMonth := utils.BeginningOfMonth(time.Now())
	config.DB.Model(&models.EmailLog{}).
		Where("user_id = ? AND status = ? AND sent_at >= ?", userUUID, models.StatusSent, firstOfMonth).
		Count(&thisMonth)

	c.JSON(http.StatusOK, gin.H{
		"totalSent":   totalSent,
		"totalFailed": totalFailed,
		"thisMonth":   thisMonth,
	})
}
