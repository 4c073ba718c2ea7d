package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"birthdaywish-backend/config"
	"birthdaywish-backend/controllers"
	"birthdaywish-backend/models"
	"birthdaywish-backend/routes"
	"birthdaywish-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Contact{},
		&models.EmailLog{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	emailService := services.NewEmailService(services.EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASS"),
		FromName: os.Getenv("SMTP_FROM_NAME"),
	})

	aiService := services.NewAIService(services.NewGroqClient(os.Getenv("GROQ_API_KEY")))

	var smsNotifier services.SMSNotifier
	if smsService := services.NewSMSService(
		os.Getenv("TWILIO_ACCOUNT_SID"),
		os.Getenv("TWILIO_AUTH_TOKEN"),
		os.Getenv("TWILIO_PHONE_NUMBER"),
	); smsService != nil {
		smsNotifier = smsService
	}

	birthdayService := services.NewBirthdayService(
		services.NewGormContactStore(config.DB),
		aiService,
		emailService,
		smsNotifier,
	)

	if os.Getenv("SCHEDULER_ENABLED") != "false" {
		if _, err := birthdayService.StartScheduler(os.Getenv("SCHEDULER_CRON")); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
	}

	r := routes.SetupRouter(routes.Controllers{
		Health:  &controllers.HealthController{Email: emailService},
		Message: &controllers.MessageController{Composer: aiService},
		Cron:    &controllers.CronController{Pipeline: birthdayService},
	})
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
