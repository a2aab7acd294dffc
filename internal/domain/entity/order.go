package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDiscount línea de descuento aplicada a una orden, ya resuelta
// (etiqueta + monto) en el momento del checkout.
type OrderDiscount struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Order representa una orden confirmada en el checkout. Las líneas se
// copian del carrito tal cual estaban; el carrito se vacía después.
type Order struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"` // consecutivo para mostrar, ej. "VC-8F2A41"
	Email     string          `json:"email"`  // email de envío (sesión o formulario)
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	Lines     []CartLine      `json:"lines"`
	Discounts []OrderDiscount `json:"discounts"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
