package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/auth"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/application/usecase"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/domain/repository"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/memory"
	infrapdf "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/pdf"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/EyadOmar/ezee-pay-ng-dashboard/internal/interfaces/http"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/pkg/config"
	"github.com/EyadOmar/ezee-pay-ng-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	var categoryRepo repository.CategoryRepository
	if cfg.DB.Enabled() {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("PostgreSQL connection")
		}
		defer pool.Close()
		categoryRepo = postgres.NewCategoryRepository(pool)
		log.Info().Msg("category store: postgres")
	} else {
		memRepo := memory.NewCategoryRepository()
		if cfg.App.SeedDemo {
			if err := memRepo.Seed(); err != nil {
				log.Fatal().Err(err).Msg("seed demo categories")
			}
		}
		categoryRepo = memRepo
		log.Info().Bool("seeded", cfg.App.SeedDemo).Msg("category store: in-memory")
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	reportUC := usecase.NewReportUseCase(categoryRepo, infrapdf.NewMarotoReportGenerator())

	adminHash := cfg.Admin.PasswordHash
	if adminHash == "" {
		// Development convenience: hash the plain ADMIN_PASSWORD at startup.
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash admin password")
		}
		adminHash = string(hash)
	}
	authUC := auth.NewAuthUseCase(
		auth.Admin{Email: cfg.Admin.Email, Name: cfg.Admin.Name, PasswordHash: adminHash},
		auth.JWTConfig{Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
