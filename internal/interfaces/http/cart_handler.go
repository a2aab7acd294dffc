package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/application/render"
	"github.com/vasave/storefront-api/internal/application/usecase"
)

// CartHandler maneja las peticiones HTTP del carrito (público, como en
// la tienda original: el carrito no requiere cuenta).
type CartHandler struct {
	cart      *usecase.CartUseCase
	discounts *usecase.DiscountUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(cart *usecase.CartUseCase, discounts *usecase.DiscountUseCase) *CartHandler {
	return &CartHandler{cart: cart, discounts: discounts}
}

// view recalcula los totales y proyecta la vista del carrito. Se invoca
// después de cada mutación; nunca se parchea incrementalmente.
func (h *CartHandler) view() dto.CartViewResponse {
	lines := h.cart.Lines()
	return render.Cart(lines, h.discounts.ComputeTotals(lines))
}

// Get godoc
// @Summary      Vista del carrito con totales
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartViewResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

// Badge godoc
// @Summary      Contador del badge del header
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.BadgeResponse
// @Router       /api/cart/badge [get]
func (h *CartHandler) Badge(c *fiber.Ctx) error {
	return c.JSON(render.Badge(h.cart.Lines()))
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Un product_id desconocido es un no-op: responde la vista sin cambios.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cart.AddItem(in.ProductID, in.Quantity); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.view())
}

// RemoveItem godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartViewResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.cart.RemoveItem(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.view())
}

// ChangeQuantity godoc
// @Summary      Ajustar la cantidad de una línea
// @Description  Delta con signo; si la cantidad resultante es <= 0 la línea se elimina.
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.ChangeQuantityRequest  true  "Delta"
// @Success      200   {object}  dto.CartViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.cart.ChangeQuantity(id, in.Delta); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.view())
}
