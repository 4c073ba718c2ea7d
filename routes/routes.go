package routes

import (
	"birthdaywish-backend/config"
	"birthdaywish-backend/controllers"
	"birthdaywish-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles the handlers that carry injected dependencies. The
// remaining handlers are plain package functions over the shared DB.
type Controllers struct {
	Health  *controllers.HealthController
	Message *controllers.MessageController
	Cron    *controllers.CronController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Cron-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", ctrl.Health.Health)
	r.GET("/health/email", ctrl.Health.EmailHealth)

	// Trigger route for external schedulers; shares the pipeline with the
	// in-process cron job
	r.GET("/api/cron", ctrl.Cron.RunBirthdayCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Contact routes
		contacts := api.Group("/contacts")
		{
			contacts.POST("", controllers.CreateContact)
			contacts.GET("", controllers.GetContacts)
			contacts.GET("/:id", controllers.GetContact)
			contacts.PUT("/:id", controllers.UpdateContact)
			contacts.DELETE("/:id", controllers.DeleteContact)
		}

		// Message generation routes
		api.POST("/messages/generate", ctrl.Message.GenerateMessage)

		// Email history routes
		logs := api.Group("/logs")
		{
			logs.GET("", controllers.GetLogs)
			logs.GET("/stats", controllers.GetLogStats)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}
	}

	return r
}
