package dto

// AddItemRequest entrada para agregar un producto al carrito.
type AddItemRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity"` // <= 0 se interpreta como 1
}

// ChangeQuantityRequest entrada para ajustar la cantidad de una línea.
// Delta es con signo; si la cantidad resultante queda en <= 0 la línea
// se elimina.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ── View models (salida de los renderers; ver internal/application/render) ────

// CartLineView una fila de la tabla del carrito, lista para mostrar.
type CartLineView struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

// DiscountLineView una línea de descuento ya resuelta para mostrar.
type DiscountLineView struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// TotalsView subtotal, descuentos y total final formateados.
type TotalsView struct {
	Subtotal  string             `json:"subtotal"`
	Discounts []DiscountLineView `json:"discounts"`
	Total     string             `json:"total"`
}

// CartViewResponse proyección completa de la página del carrito.
// Empty marca la ruta de render explícita de carrito vacío.
type CartViewResponse struct {
	Empty  bool           `json:"empty"`
	Lines  []CartLineView `json:"lines"`
	Totals TotalsView     `json:"totals"`
}

// BadgeResponse contador del badge del header: suma de cantidades.
type BadgeResponse struct {
	Count int `json:"count"`
}

// CheckoutSummaryResponse proyección del resumen del checkout.
type CheckoutSummaryResponse struct {
	Empty     bool           `json:"empty"`
	ItemCount int            `json:"item_count"`
	Lines     []CartLineView `json:"lines"`
	Totals    TotalsView     `json:"totals"`
}
