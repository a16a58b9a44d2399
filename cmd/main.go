package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lunarhue/formlark/config"
	"github.com/lunarhue/formlark/database"
	_ "github.com/lunarhue/formlark/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lunarhue/formlark/internal/controller/admin"
	userctrl "github.com/lunarhue/formlark/internal/controller/user"
	"github.com/lunarhue/formlark/internal/logger"
	"github.com/lunarhue/formlark/internal/model"
	"github.com/lunarhue/formlark/internal/repository"
	"github.com/lunarhue/formlark/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Formlark API
// @version 1.0
// @description Form builder and response collection API with per-question response analytics.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewFormRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewFormAdminService,
			service.NewSubmissionService,
			service.NewAnalyticsService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewFormController,
			userctrl.NewResponseController,
			userctrl.NewAnalyticsController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	// Wait for a shutdown signal
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Custom logger using Zerolog for Gin
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	formCtrl *adminctrl.FormController,
	responseCtrl *userctrl.ResponseController,
	analyticsCtrl *userctrl.AnalyticsController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		formsAdminGroup := adminAPIGroup.Group("/forms")
		formsAdminGroup.POST("", formCtrl.CreateForm)
		formsAdminGroup.GET("", formCtrl.ListForms)
		formsAdminGroup.GET("/:form_id", formCtrl.GetForm)
		formsAdminGroup.DELETE("/:form_id", formCtrl.DeleteForm)
		formsAdminGroup.DELETE("/:form_id/questions/:question_key", formCtrl.DeleteQuestion)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Response collection
		userAPIGroup.POST("/forms/:form_id/responses", responseCtrl.SubmitResponse)
		userAPIGroup.GET("/forms/:form_id/responses", responseCtrl.ListResponses)
		userAPIGroup.GET("/responses/:response_id", responseCtrl.GetResponse)
		userAPIGroup.DELETE("/responses/:response_id", responseCtrl.DeleteResponse)

		// Analytics
		userAPIGroup.GET("/forms/:form_id/analytics", analyticsCtrl.GetFormAnalytics)
		userAPIGroup.GET("/forms/:form_id/responders", analyticsCtrl.GetResponders)
	}

	// HTTP Server Setup and Lifecycle
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Formlark API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Form{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
