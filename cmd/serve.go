package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"

	"taskhive.com/taskhive/internal/cache"
	config "taskhive.com/taskhive/internal/configs"
	httpapi "taskhive.com/taskhive/internal/http"
	repository "taskhive.com/taskhive/internal/repositories"
	"taskhive.com/taskhive/internal/services"
	"taskhive.com/taskhive/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the team task management HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		if err := logger.Init(cfg.LogDir); err != nil {
			log.Fatalf("logger init failed: %v", err)
		}
		defer logger.Sync()

		database := config.New(cfg.DatabaseDSN)

		var redisClient rueidis.Client
		var taskCache *cache.TaskCache
		if cfg.RedisEnabled {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			taskCache = cache.NewTaskCache(redisClient, time.Duration(cfg.CacheTTLMinutes)*time.Minute)
		}

		userRepo := repository.NewUserRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		historyRepo := repository.NewTaskHistoryRepository(database)
		boardRepo := repository.NewBoardRepository(database)
		milestoneRepo := repository.NewMilestoneRepository(database)
		achievementRepo := repository.NewAchievementRepository(database)
		notificationRepo := repository.NewNotificationRepository(database)

		userService := services.NewUserService(userRepo, []byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
		projectService := services.NewProjectService(projectRepo)
		taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, taskCache)
		boardService := services.NewBoardService(boardRepo, projectRepo, taskRepo)
		historyService := services.NewHistoryService(historyRepo, projectRepo)
		milestoneService := services.NewMilestoneService(milestoneRepo, projectRepo)
		achievementService := services.NewAchievementService(achievementRepo, milestoneRepo, userRepo)
		notificationService := services.NewNotificationService(notificationRepo)

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(
			userService,
			projectService,
			taskService,
			boardService,
			historyService,
			milestoneService,
			achievementService,
			notificationService,
		)
		httpapi.Register(e, handler, []byte(cfg.JWTSecret), cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
