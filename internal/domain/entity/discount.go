package entity

import "github.com/shopspring/decimal"

// Tipos de descuento.
const (
	DiscountKindPercent = "percent" // porcentaje sobre el subtotal
	DiscountKindFixed   = "fixed"   // monto fijo en USD
)

// DiscountCode representa un código de descuento del registro estático.
// Hay dos registros disjuntos: promocionales y de referido.
type DiscountCode struct {
	Code  string
	Kind  string          // ver constantes DiscountKind*
	Value decimal.Decimal // porcentaje (0-100) o monto fijo según Kind
	Label string          // texto para la línea de descuento en pantalla
}

// AmountFor devuelve el monto descontado para el subtotal dado.
func (d DiscountCode) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	if d.Kind == DiscountKindPercent {
		return subtotal.Mul(d.Value).Div(decimal.NewFromInt(100))
	}
	return d.Value
}

// AppliedCodes códigos activos: cero o un promo y cero o un referido.
// Ambos pueden estar activos a la vez y sus descuentos se suman.
type AppliedCodes struct {
	Promo    string `json:"promo_code"`
	Referral string `json:"referral_code"`
}
