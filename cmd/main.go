package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pothoprodorshok/backend/config"
	"github.com/pothoprodorshok/backend/database"
	_ "github.com/pothoprodorshok/backend/docs" // Swagger docs
	aictrl "github.com/pothoprodorshok/backend/internal/controller/ai"
	authctrl "github.com/pothoprodorshok/backend/internal/controller/auth"
	"github.com/pothoprodorshok/backend/internal/history"
	"github.com/pothoprodorshok/backend/internal/logger"
	"github.com/pothoprodorshok/backend/internal/model"
	"github.com/pothoprodorshok/backend/internal/repository"
	"github.com/pothoprodorshok/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Potho Prodorshok API
// @version 1.0
// @description AI-powered career guidance backend: roadmaps, tutoring, mock tests, performance analysis and scholarship discovery.
// @host localhost:5001
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			func(cfg *config.Config) history.Store {
				return history.NewFileStore(cfg.History.FilePath)
			},
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewGeminiService,
			service.NewRoadmapService,
			service.NewChatService,
			service.NewTutorService,
			service.NewMockTestService,
			service.NewPerformanceService,
			service.NewScholarshipService,
			service.NewAuthService,
		),

		// API controllers layer
		fx.Provide(
			aictrl.NewAIController,
			authctrl.NewAuthController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	aiCtrl *aictrl.AIController,
	authCtrl *authctrl.AuthController,
) {
	router.POST("/generate-roadmap", aiCtrl.GenerateRoadmap)
	router.POST("/chat", aiCtrl.Chat)
	router.POST("/get-question", aiCtrl.GetQuestion)
	router.POST("/solve-doubt", aiCtrl.SolveDoubt)
	router.POST("/generate-mock-test", aiCtrl.GenerateMockTest)
	router.POST("/analyze-performance", aiCtrl.AnalyzePerformance)
	router.POST("/find-scholarships", aiCtrl.FindScholarships)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/session", authCtrl.CheckSession)
		authGroup.GET("/google/login", authCtrl.GoogleLogin)
		authGroup.GET("/google/callback", authCtrl.GoogleCallback)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Career guidance API server starting on port %s", cfg.Server.Port)
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
	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
