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

	"github.com/vasave/storefront-api/internal/application/usecase"
	infracatalog "github.com/vasave/storefront-api/internal/infrastructure/catalog"
	"github.com/vasave/storefront-api/internal/infrastructure/localstore"
	"github.com/vasave/storefront-api/internal/infrastructure/notify"
	infrapdf "github.com/vasave/storefront-api/internal/infrastructure/pdf"
	httpRouter "github.com/vasave/storefront-api/internal/interfaces/http"
	"github.com/vasave/storefront-api/pkg/config"
	"github.com/vasave/storefront-api/pkg/logger"
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

	// Documento local de estado: carrito, códigos, usuarios, sesión y
	// órdenes bajo un solo load/save. Corrupto = arranque con estado vacío.
	store, err := localstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir el documento de estado")
	}
	log.Info().Str("path", store.Path()).Msg("documento de estado cargado")

	menu := infracatalog.New()
	registry := infracatalog.NewCodeRegistry()
	toasts := notify.NewToastCenter(cfg.Notify.TTL())

	catalogUC := usecase.NewCatalogUseCase(menu)
	cartUC := usecase.NewCartUseCase(menu, store.Cart(), toasts)
	discountUC := usecase.NewDiscountUseCase(registry, store.Codes())
	accountUC := usecase.NewAccountUseCase(store.Users(), store.Sessions(), discountUC, usecase.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	checkoutUC := usecase.NewCheckoutUseCase(cartUC, discountUC, store.Orders(), receiptGenerator, cfg.Checkout.Delay())

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
		Title:    "Vasave Storefront API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		CartUC:     cartUC,
		DiscountUC: discountUC,
		AccountUC:  accountUC,
		CheckoutUC: checkoutUC,
		Toasts:     toasts,
		JWTSecret:  cfg.JWT.Secret,
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
