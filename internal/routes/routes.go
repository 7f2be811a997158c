package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nanofrontier/internal/authz"
	"nanofrontier/internal/handlers"
	"nanofrontier/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	identityHandler *handlers.IdentityHandler,
	surveyHandler *handlers.SurveyHandler,
	dashboardHandler *handlers.DashboardHandler,
	authHandler *handlers.AuthHandler,
) *gin.Engine {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ---- public
	r.POST("/session/anonymous", identityHandler.EnsureAnonymous)
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// каталог и калькулятор открыты без токена
	r.GET("/offerings", surveyHandler.ListOfferings)
	r.GET("/offerings/:code", surveyHandler.GetOffering)
	r.GET("/offerings/:code/projection", surveyHandler.Projection)

	// ---- protected
	r.Use(middleware.Auth(jwtSecret))

	// заявки — только с анонимной сессией посетителя
	r.POST("/offerings/:code/leads", surveyHandler.Submit)

	// DASHBOARD (операторы)
	dashboard := r.Group("/dashboard",
		middleware.RequireOperator(authz.RoleAnalyst, authz.RoleOperations, authz.RoleAdmin),
	)
	{
		dashboard.GET("/:code/summary", dashboardHandler.Summary)
		dashboard.GET("/:code/report.pdf", dashboardHandler.ReportPDF)
		dashboard.GET("/:code/stream", dashboardHandler.Stream)
	}

	return r
}
