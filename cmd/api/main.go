package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "mychecklist/internal/adapter/db"
	httpadapter "mychecklist/internal/adapter/http"
	"mychecklist/internal/adapter/http/handlers"
	httpmiddleware "mychecklist/internal/adapter/http/middleware"
	appservice "mychecklist/internal/app/service"
	"mychecklist/internal/config"
	"mychecklist/pkg/jwtauth"
	"mychecklist/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	tokens := jwtauth.NewProvider(cfg.JwtSecret, cfg.JwtTTL)

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	completionRepository := dbadapter.NewCompletionRepository(db)

	authService := appservice.NewAuthService(userRepository, tokens)
	taskService := appservice.NewTaskService(taskRepository, completionRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, authHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
