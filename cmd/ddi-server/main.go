package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hannahwhyatt/ddi-api/internal/config"
	"github.com/hannahwhyatt/ddi-api/internal/domain/clinical"
	"github.com/hannahwhyatt/ddi-api/internal/domain/drugclass"
	"github.com/hannahwhyatt/ddi-api/internal/domain/indication"
	"github.com/hannahwhyatt/ddi-api/internal/domain/interaction"
	"github.com/hannahwhyatt/ddi-api/internal/domain/meddra"
	"github.com/hannahwhyatt/ddi-api/internal/domain/sideeffect"
	signalpkg "github.com/hannahwhyatt/ddi-api/internal/domain/signal"
	"github.com/hannahwhyatt/ddi-api/internal/platform/db"
	"github.com/hannahwhyatt/ddi-api/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ddi-server",
		Short: "Drug-drug interaction query API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL(), cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	if cfg.RequestTimeout > 0 {
		e.Use(middleware.RequestTimeout(time.Duration(cfg.RequestTimeout) * time.Second))
	}
	e.Use(db.SessionMiddleware(pool))

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Drug interaction API is running",
		})
	})
	e.GET("/health", db.HealthHandler(pool))

	// Domain wiring
	meddraSvc := meddra.NewService(meddra.NewMappingRepoPG(pool))
	interactionSvc := interaction.NewService(interaction.NewInteractionRepoPG(pool))
	sideEffectSvc := sideeffect.NewService(sideeffect.NewSideEffectRepoPG(pool), meddraSvc)
	indicationSvc := indication.NewService(indication.NewIndicationRepoPG(pool))
	signalSvc := signalpkg.NewService(signalpkg.NewRateRepoPG(pool))
	drugClassSvc := drugclass.NewService(drugclass.NewDrugClassRepoPG(pool))
	clinicalSvc := clinical.NewService(clinical.NewClinicalRepoPG(pool))

	root := e.Group("")
	meddra.NewHandler(meddraSvc).RegisterRoutes(root)
	interaction.NewHandler(interactionSvc).RegisterRoutes(root)
	sideeffect.NewHandler(sideEffectSvc).RegisterRoutes(root)
	indication.NewHandler(indicationSvc).RegisterRoutes(root)
	signalpkg.NewHandler(signalSvc).RegisterRoutes(root)
	drugclass.NewHandler(drugClassSvc).RegisterRoutes(root)
	clinical.NewHandler(clinicalSvc).RegisterRoutes(root)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
