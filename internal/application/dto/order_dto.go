package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest datos de envío y pago del checkout. Los datos de la
// tarjeta se validan en formato y se descartan: nunca se persisten.
type CheckoutRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	CardNumber string `json:"card_number" validate:"required"`
	CardExpiry string `json:"card_expiry" validate:"required"` // MM/YY
	CardCVV    string `json:"card_cvv" validate:"required"`
}

// OrderDiscountResponse línea de descuento de una orden.
type OrderDiscountResponse struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// OrderLineResponse línea de una orden.
type OrderLineResponse struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse salida de una orden confirmada.
type OrderResponse struct {
	ID        string                  `json:"id"`
	Number    string                  `json:"number"`
	Email     string                  `json:"email"`
	Lines     []OrderLineResponse     `json:"lines"`
	Discounts []OrderDiscountResponse `json:"discounts"`
	Subtotal  decimal.Decimal         `json:"subtotal"`
	Total     decimal.Decimal         `json:"total"`
	CreatedAt time.Time               `json:"created_at"`
}

// OrderListResponse historial de órdenes de la sesión.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}
