package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/application/render"
	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/domain"
)

// CheckoutHandler maneja el resumen, la confirmación de la orden y los
// recibos.
type CheckoutHandler struct {
	checkout  *usecase.CheckoutUseCase
	cart      *usecase.CartUseCase
	discounts *usecase.DiscountUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(checkout *usecase.CheckoutUseCase, cart *usecase.CartUseCase, discounts *usecase.DiscountUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, cart: cart, discounts: discounts}
}

// Summary godoc
// @Summary      Resumen del checkout
// @Tags         checkout
// @Produce      json
// @Success      200  {object}  dto.CheckoutSummaryResponse
// @Router       /api/checkout/summary [get]
func (h *CheckoutHandler) Summary(c *fiber.Ctx) error {
	lines := h.cart.Lines()
	return c.JSON(render.Summary(lines, h.discounts.ComputeTotals(lines)))
}

// PlaceOrder godoc
// @Summary      Confirmar la orden
// @Description  Valida envío y tarjeta, simula el procesamiento de pago y limpia carrito y códigos.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos de envío y pago"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.PlaceOrder(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListOrders godoc
// @Summary      Historial de órdenes de la sesión
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *CheckoutHandler) ListOrders(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email requerido"})
	}
	return c.JSON(h.checkout.ListOrders(email))
}

// Receipt godoc
// @Summary      Recibo PDF de una orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	email := GetEmail(c)
	if email == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email requerido"})
	}
	raw, err := h.checkout.Receipt(c.UserContext(), c.Params("id"), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(raw)
}
