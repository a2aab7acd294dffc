package entity

import "github.com/shopspring/decimal"

// CartLine representa una línea del carrito. Copia name/price/image del
// producto en el momento de agregarlo (desnormalizado: un cambio
// posterior del catálogo no afecta líneas existentes).
// Invariante: como máximo una línea por ProductID.
type CartLine struct {
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"` // siempre >= 1
}

// LineTotal devuelve price * quantity de la línea.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSubtotal suma los totales de todas las líneas.
func CartSubtotal(lines []CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return subtotal
}

// CartCount devuelve la suma de cantidades (el contador del badge).
func CartCount(lines []CartLine) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
