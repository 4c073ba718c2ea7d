package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// EmailVerifier is the delivery client's send-nothing diagnostic check.
type EmailVerifier interface {
	VerifyConfig() error
}

// HealthController serves liveness and mail-transport diagnostics
type HealthController struct {
	Email EmailVerifier
}

func (hc *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Auto Birthday Wish Sender API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// EmailHealth verifies SMTP credentials without sending mail
func (hc *HealthController) EmailHealth(c *gin.Context) {
	if err := hc.Email.VerifyConfig(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Email server is ready"})
}
