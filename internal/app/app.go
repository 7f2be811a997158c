package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"nanofrontier/internal/config"
	"nanofrontier/internal/handlers"
	"nanofrontier/internal/pdf"
	"nanofrontier/internal/realtime"
	"nanofrontier/internal/repositories"
	"nanofrontier/internal/routes"
	"nanofrontier/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "nanofrontier/docs"
)

func Run() {
	cfg := config.LoadConfig()
	jwtSecret := []byte(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	leadRepo := repositories.NewLeadRepository(db)
	visitorRepo := repositories.NewVisitorRepository(db)
	operatorRepo := repositories.NewOperatorRepository(db)

	// === Realtime ===
	hub := realtime.NewDashboardHub()

	// === Services ===
	identityService := services.NewIdentityService(
		visitorRepo,
		jwtSecret,
		time.Duration(cfg.Auth.VisitorTokenTTLHrs)*time.Hour,
	)
	authService := services.NewAuthService(
		operatorRepo,
		jwtSecret,
		time.Duration(cfg.Auth.AccessTokenTTLMins)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenTTLDays)*24*time.Hour,
	)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	notifier, err := services.NewTelegramNotifier(cfg.Telegram)
	if err != nil {
		// уведомления не критичны для приёма заявок
		log.Printf("Telegram-интеграция недоступна: %v", err)
		notifier = nil
	}

	reportService := services.NewReportService(leadRepo, hub)
	surveyService := services.NewSurveyService(leadRepo, reportService, emailService, notifier)

	// PDF-отчёты по спросу
	pdfGen := pdf.NewReportGenerator("NanoFrontier")

	// === Handlers ===
	identityHandler := handlers.NewIdentityHandler(identityService)
	surveyHandler := handlers.NewSurveyHandler(cfg, surveyService)
	dashboardHandler := handlers.NewDashboardHandler(cfg, reportService, hub, pdfGen)
	authHandler := handlers.NewAuthHandler(authService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Роуты (JWT-гварды — внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		jwtSecret,
		identityHandler,
		surveyHandler,
		dashboardHandler,
		authHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
