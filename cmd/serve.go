package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/rueidis"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	config "tasktracker.com/tasktracker/internal/configs"
	httpapi "tasktracker.com/tasktracker/internal/http"
	repository "tasktracker.com/tasktracker/internal/repositories"
	"tasktracker.com/tasktracker/internal/services"
)

const statsCacheKey = "task_stats_summary"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task and appointment tracker HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

		if err := godotenv.Load(); err != nil {
			log.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		db := config.New(cfg.DatabaseDSN)

		var statsCache *services.StatsCache
		var redisClient rueidis.Client
		if cfg.StatsCacheEnabled {
			redisClient = config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			statsCache = services.NewStatsCache(
				redisClient,
				statsCacheKey,
				time.Duration(cfg.StatsCacheTTLSeconds)*time.Second,
			)
		}

		taskRepo := repository.NewTaskRepository(db)
		userRepo := repository.NewUserRepository(db)
		aptRepo := repository.NewAppointmentRepository(db)

		taskService := services.NewTaskService(taskRepo, statsCache, log.With().Str("component", "tasks").Logger())
		authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret))
		aptService := services.NewAppointmentService(aptRepo, userRepo, log.With().Str("component", "appointments").Logger())

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true

		handler := httpapi.NewHandler(taskService, authService, aptService)
		httpapi.Register(e, handler, cfg.RateLimit, []byte(cfg.JWTSecret))

		go func() {
			log.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				log.Info().Err(err).Msg("server stopped")
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
