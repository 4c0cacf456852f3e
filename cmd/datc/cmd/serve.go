package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/freeeve/datc-orders/internal/auth"
	"github.com/freeeve/datc-orders/internal/config"
	"github.com/freeeve/datc-orders/internal/handler"
	"github.com/freeeve/datc-orders/internal/repository"
	"github.com/freeeve/datc-orders/internal/repository/postgres"
	redisrepo "github.com/freeeve/datc-orders/internal/repository/redis"
	"github.com/freeeve/datc-orders/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversion HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	log.Info().Str("port", cfg.Port).Dur("cacheTTL", cfg.CacheTTL).Msg("Config loaded")

	// Database
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("Database connection failed")
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(cmd.Context(), db); err != nil {
		log.Error().Err(err).Msg("Schema setup failed")
		return err
	}

	// Redis (optional)
	var cache repository.ConversionCache
	redisClient, err := redisrepo.NewClient(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, conversion cache disabled")
	} else {
		defer redisClient.Close()
		cache = redisClient
	}

	svc := service.NewConvertService(postgres.NewCaseRepo(db), cache, cfg.CacheTTL)
	jwtMgr := auth.NewJWTManager(cfg.JWTSecret)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.NewRouter(svc, jwtMgr),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("Server error")
		return err
	case <-quit:
	}
	log.Info().Msg("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return err
	}
	log.Info().Msg("Server stopped")
	return nil
}
