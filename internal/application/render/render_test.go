package render_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasave/storefront-api/internal/application/render"
	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func sampleLines() []entity.CartLine {
	return []entity.CartLine{
		{ProductID: 1, Name: "Signature Cappuccino", Price: decimal.NewFromFloat(5.50), Quantity: 2},
		{ProductID: 3, Name: "Almond Croissant", Price: decimal.NewFromFloat(4.50), Quantity: 1},
	}
}

func sampleTotals() usecase.Totals {
	subtotal := decimal.NewFromFloat(15.50)
	discount := decimal.NewFromFloat(3.10)
	return usecase.Totals{
		Subtotal: subtotal,
		Discounts: []entity.OrderDiscount{
			{Code: "PROMO20", Label: "Promo 20% off", Amount: discount},
		},
		DiscountTotal: discount,
		Total:         subtotal.Sub(discount),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Money
// ──────────────────────────────────────────────────────────────────────────────

func TestMoney_FormateaMontosEnUSD(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5.5", "$5.50"},
		{"15.50", "$15.50"},
		{"1234.5", "$1,234.50"},
		{"3.999", "$4.00"}, // redondeo a 2 decimales
	}
	for _, c := range casos {
		got := render.Money(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "Money(%s)", c.in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cart
// ──────────────────────────────────────────────────────────────────────────────

// El carrito vacío es una ruta de render explícita: Empty=true, listas
// vacías (no nil) y totales en $0.00.
func TestCart_RutaExplicitaDeCarritoVacio(t *testing.T) {
	view := render.Cart(nil, usecase.Totals{})

	assert.True(t, view.Empty)
	require.NotNil(t, view.Lines)
	assert.Empty(t, view.Lines)
	assert.Equal(t, "$0.00", view.Totals.Subtotal)
	assert.Equal(t, "$0.00", view.Totals.Total)
	require.NotNil(t, view.Totals.Discounts)
	assert.Empty(t, view.Totals.Discounts)
}

func TestCart_ProyectaLineasYTotales(t *testing.T) {
	view := render.Cart(sampleLines(), sampleTotals())

	assert.False(t, view.Empty)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Signature Cappuccino", view.Lines[0].Name)
	assert.Equal(t, "$5.50", view.Lines[0].UnitPrice)
	assert.Equal(t, "$11.00", view.Lines[0].LineTotal, "line total = precio x cantidad")
	assert.Equal(t, "$4.50", view.Lines[1].LineTotal)

	assert.Equal(t, "$15.50", view.Totals.Subtotal)
	require.Len(t, view.Totals.Discounts, 1)
	assert.Equal(t, "Promo 20% off", view.Totals.Discounts[0].Label)
	assert.Equal(t, "-$3.10", view.Totals.Discounts[0].Amount, "los descuentos se muestran en negativo")
	assert.Equal(t, "$12.40", view.Totals.Total)
}

// Proyección pura: la misma entrada produce exactamente la misma vista.
func TestCart_EsIdempotente(t *testing.T) {
	a := render.Cart(sampleLines(), sampleTotals())
	b := render.Cart(sampleLines(), sampleTotals())

	assert.Equal(t, a, b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Summary / Badge
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_IncluyeConteoDeItems(t *testing.T) {
	view := render.Summary(sampleLines(), sampleTotals())

	assert.False(t, view.Empty)
	assert.Equal(t, 3, view.ItemCount, "suma de cantidades (2+1)")
	assert.Len(t, view.Lines, 2)
	assert.Equal(t, "$12.40", view.Totals.Total)
}

func TestSummary_CarritoVacio(t *testing.T) {
	view := render.Summary(nil, usecase.Totals{})

	assert.True(t, view.Empty)
	assert.Zero(t, view.ItemCount)
}

// El badge del header es la suma de cantidades, no el número de líneas.
func TestBadge_SumaCantidades(t *testing.T) {
	assert.Equal(t, 3, render.Badge(sampleLines()).Count)
	assert.Zero(t, render.Badge(nil).Count)
}
