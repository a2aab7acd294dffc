package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vasave/storefront-api/internal/domain/entity"
)

// Registros de códigos, disjuntos entre sí. Las claves ya están en
// mayúsculas; la normalización de la entrada ocurre en el use case.
var (
	promoCodes = map[string]entity.DiscountCode{
		"PROMO20": {
			Code:  "PROMO20",
			Kind:  entity.DiscountKindPercent,
			Value: decimal.NewFromInt(20),
			Label: "Promo 20% off",
		},
		"BREW10": {
			Code:  "BREW10",
			Kind:  entity.DiscountKindPercent,
			Value: decimal.NewFromInt(10),
			Label: "Brew lovers 10% off",
		},
		"CAFE3": {
			Code:  "CAFE3",
			Kind:  entity.DiscountKindFixed,
			Value: decimal.NewFromInt(3),
			Label: "$3 off your order",
		},
	}

	referralCodes = map[string]entity.DiscountCode{
		"REF5": {
			Code:  "REF5",
			Kind:  entity.DiscountKindFixed,
			Value: decimal.NewFromInt(5),
			Label: "Referral $5 off",
		},
		"FRIEND10": {
			Code:  "FRIEND10",
			Kind:  entity.DiscountKindPercent,
			Value: decimal.NewFromInt(10),
			Label: "Friend referral 10% off",
		},
	}
)

// CodeRegistry implementa repository.CodeRegistry sobre los registros
// estáticos.
type CodeRegistry struct{}

// NewCodeRegistry construye el registro.
func NewCodeRegistry() *CodeRegistry { return &CodeRegistry{} }

// FindPromo devuelve nil si el código no es un promo válido.
func (r *CodeRegistry) FindPromo(code string) *entity.DiscountCode {
	c, ok := promoCodes[code]
	if !ok {
		return nil
	}
	return &c
}

// FindReferral devuelve nil si el código no es un referido válido.
func (r *CodeRegistry) FindReferral(code string) *entity.DiscountCode {
	c, ok := referralCodes[code]
	if !ok {
		return nil
	}
	return &c
}
