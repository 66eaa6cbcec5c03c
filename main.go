package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"skillsphere-service/internal/config"
	"skillsphere-service/internal/db"
	"skillsphere-service/internal/event"
	"skillsphere-service/internal/handlers"
	"skillsphere-service/internal/repository"
	"skillsphere-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)
	defer db.Close()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, assessment events will not be published")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	// Assessments
	assessmentRepo := repository.NewAssessmentRepository(database)
	if err := assessmentRepo.SeedDefaults(context.Background()); err != nil {
		log.Printf("Error seeding assessments: %v", err)
	}

	// Sessions and results
	sessionRepo := repository.NewSessionRepository(database)
	resultRepo := repository.NewResultRepository(database)

	// AI generator and analytics
	aiService := service.NewAIService(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	analyticsService := service.NewAnalyticsService(sessionRepo, resultRepo)

	assessmentService := service.NewAssessmentService(
		assessmentRepo,
		sessionRepo,
		resultRepo,
		aiService,
		analyticsService,
	)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	dashboardHandler := handlers.NewDashboardHandler(assessmentService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.POST("/assessments/start", func(c *gin.Context) {
			assessmentHandler.StartAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.session.started", gin.H{
					"status": c.Writer.Status(),
				})
			}
		})

		api.POST("/assessments/submit", func(c *gin.Context) {
			assessmentHandler.SubmitAssessment(c)
			if publisher != nil {
				publisher.Publish("assessment.submitted", gin.H{
					"status": c.Writer.Status(),
				})
			}
		})

		api.GET("/dashboard/overview", func(c *gin.Context) {
			dashboardHandler.Overview(c)
			if publisher != nil {
				publisher.Publish("dashboard.viewed", gin.H{
					"user_id": c.Query("user_id"),
				})
			}
		})

		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "SkillSphere API",
				"version": cfg.ServiceVersion,
			})
		})
	}

	log.Printf("SkillSphere API listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
