package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	CartUC     *usecase.CartUseCase
	DiscountUC *usecase.DiscountUseCase
	AccountUC  *usecase.AccountUseCase
	CheckoutUC *usecase.CheckoutUseCase
	Toasts     *notify.ToastCenter
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Menú (público)
	products := api.Group("/products")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Get("/", catalogHandler.List)
	products.Get("/:id", catalogHandler.GetByID)

	// Carrito (público; la tienda no exige cuenta para comprar)
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC, deps.DiscountUC)
	cart.Get("/", cartHandler.Get)
	cart.Get("/badge", cartHandler.Badge)
	cart.Post("/items", cartHandler.AddItem)
	cart.Delete("/items/:id", cartHandler.RemoveItem)
	cart.Patch("/items/:id", cartHandler.ChangeQuantity)

	// Códigos de descuento (público)
	discounts := api.Group("/discounts")
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	discounts.Get("/", discountHandler.Active)
	discounts.Delete("/", discountHandler.Clear)
	discounts.Post("/promo", discountHandler.ApplyPromo)
	discounts.Post("/referral", discountHandler.ApplyReferral)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AccountUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Checkout (público) y órdenes (requieren Bearer Token)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC, deps.CartUC, deps.DiscountUC)
	checkout := api.Group("/checkout")
	checkout.Get("/summary", checkoutHandler.Summary)
	checkout.Post("/", checkoutHandler.PlaceOrder)

	orders := api.Group("/orders", AuthMiddleware(deps.JWTSecret))
	orders.Get("/", checkoutHandler.ListOrders)
	orders.Get("/:id/receipt", checkoutHandler.Receipt)

	// Notificaciones transitorias (público)
	notifications := api.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Toasts)
	notifications.Get("/", notificationHandler.Active)
}
