package controllers

import (
	"net/http"
	"os"
	"time"

	"birthdaywish-backend/services"
	"birthdaywish-backend/utils"

	"github.com/gin-gonic/gin"
)

// BirthdayRunner is the one operation the trigger needs from the pipeline.
type BirthdayRunner interface {
	RunOnce(now time.Time) (services.RunResult, error)
}

// CronController is the inbound variant of the trigger: an external
// scheduler (or an operator) hits this endpoint instead of waiting for the
// in-process cron job. Both paths invoke the same RunOnce.
type CronController struct {
	Pipeline BirthdayRunner
}

// RunBirthdayCheck runs the sweep immediately and reports the counts.
// Per-contact delivery failures are recorded in the log, not escalated;
// only a store-level abort produces an error response.
func (cc *CronController) RunBirthdayCheck(c *gin.Context) {
	// Optional shared-secret check for externally triggered runs
	if secret := os.Getenv("CRON_SECRET"); secret != "" {
		if c.GetHeader("X-Cron-Secret") != secret {
			utils.RespondWithError(c, http.StatusUnauthorized, "Invalid cron secret")
			return
		}
	}

	result, err := cc.Pipeline.RunOnce(time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Birthday check completed successfully",
		"result":  result,
	})
}
