package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/plantnet-api/internal/application/auth"
	"github.com/jhoicas/plantnet-api/internal/application/usecase"
	"github.com/jhoicas/plantnet-api/internal/infrastructure/postgres"
	infrastripe "github.com/jhoicas/plantnet-api/internal/infrastructure/stripe"
	httpRouter "github.com/jhoicas/plantnet-api/internal/interfaces/http"
	"github.com/jhoicas/plantnet-api/pkg/config"
	"github.com/jhoicas/plantnet-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	plantRepo := postgres.NewPlantRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	paymentSvc := infrastripe.NewPaymentService(cfg.Stripe.SecretKey)

	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:  cfg.JWT.Secret,
		ExpDays: cfg.JWT.ExpDays,
		Issuer:  cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	plantUC := usecase.NewPlantUseCase(plantRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo)
	paymentUC := usecase.NewPaymentUseCase(plantRepo, paymentSvc)
	statsUC := usecase.NewStatsUseCase(userRepo, plantRepo, orderRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS con credenciales: la cookie de sesión viaja cross-origin desde el
	// frontend, así que los orígenes permitidos deben ser explícitos
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins(), ","),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "plantNet API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello from plantNet Server..")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		PlantUC:    plantUC,
		OrderUC:    orderUC,
		PaymentUC:  paymentUC,
		StatsUC:    statsUC,
		UserRepo:   userRepo,
		JWTSecret:  cfg.JWT.Secret,
		Production: cfg.App.Env == "production",
		ExpDays:    cfg.JWT.ExpDays,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("plantNet escuchando")

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
