package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/justdc/club-api/internal/application/auth"
	"github.com/justdc/club-api/internal/application/usecase"
	infraoidc "github.com/justdc/club-api/internal/infrastructure/oidc"
	infrapdf "github.com/justdc/club-api/internal/infrastructure/pdf"
	"github.com/justdc/club-api/internal/infrastructure/postgres"
	httpRouter "github.com/justdc/club-api/internal/interfaces/http"
	"github.com/justdc/club-api/pkg/config"
	"github.com/justdc/club-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	galleryRepo := postgres.NewGalleryRepository(pool)
	alumniRepo := postgres.NewAlumniRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	verifier, err := infraoidc.NewVerifier(ctx, cfg.OIDC)
	if err != nil {
		log.Fatal().Err(err).Msg("verificador OIDC")
	}

	userUC := usecase.NewUserUseCase(userRepo)
	statsUC := usecase.NewStatsUseCase(userUC, statsRepo)
	adminUC := usecase.NewAdminUseCase(userRepo, infrapdf.NewMarotoRosterGenerator())
	eventUC := usecase.NewEventUseCase(eventRepo)
	galleryUC := usecase.NewGalleryUseCase(galleryRepo)
	alumniUC := usecase.NewAlumniUseCase(alumniRepo)
	authUC := auth.NewAuthUseCase(verifier, userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "JUST Debate Club API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		StatsUC:   statsUC,
		AdminUC:   adminUC,
		EventUC:   eventUC,
		GalleryUC: galleryUC,
		AlumniUC:  alumniUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
