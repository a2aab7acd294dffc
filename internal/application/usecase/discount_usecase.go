package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vasave/storefront-api/internal/domain"
	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/domain/repository"
)

// Totals resultado de ComputeTotals: subtotal, líneas de descuento en
// orden promo-luego-referido y total final (nunca negativo).
type Totals struct {
	Subtotal      decimal.Decimal
	Discounts     []entity.OrderDiscount
	DiscountTotal decimal.Decimal
	Total         decimal.Decimal
}

// DiscountUseCase aplica y resuelve códigos de descuento. Promo y
// referido son independientes: aplicar uno nunca afecta al otro, y un
// código nuevo del mismo tipo reemplaza al anterior (no se acumulan
// dentro del mismo tipo).
type DiscountUseCase struct {
	registry repository.CodeRegistry
	repo     repository.AppliedCodesRepository
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(registry repository.CodeRegistry, repo repository.AppliedCodesRepository) *DiscountUseCase {
	return &DiscountUseCase{registry: registry, repo: repo}
}

// normalizeCode recorta espacios y pasa a mayúsculas.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ApplyPromo valida y activa un código promocional. Entrada vacía
// devuelve ErrEmptyCode; código desconocido, ErrUnknownCode. En ambos
// casos el estado no cambia.
func (uc *DiscountUseCase) ApplyPromo(code string) (*entity.DiscountCode, error) {
	norm := normalizeCode(code)
	if norm == "" {
		return nil, domain.ErrEmptyCode
	}
	found := uc.registry.FindPromo(norm)
	if found == nil {
		return nil, domain.ErrUnknownCode
	}
	codes := uc.repo.Get()
	codes.Promo = norm
	if err := uc.repo.Save(codes); err != nil {
		return nil, err
	}
	return found, nil
}

// ApplyReferral procedimiento idéntico a ApplyPromo contra el registro
// de referidos.
func (uc *DiscountUseCase) ApplyReferral(code string) (*entity.DiscountCode, error) {
	norm := normalizeCode(code)
	if norm == "" {
		return nil, domain.ErrEmptyCode
	}
	found := uc.registry.FindReferral(norm)
	if found == nil {
		return nil, domain.ErrUnknownCode
	}
	codes := uc.repo.Get()
	codes.Referral = norm
	if err := uc.repo.Save(codes); err != nil {
		return nil, err
	}
	return found, nil
}

// ClearCodes desactiva ambos códigos; no-op si no había ninguno.
func (uc *DiscountUseCase) ClearCodes() error {
	return uc.repo.Save(entity.AppliedCodes{})
}

// Active devuelve los códigos activos resueltos contra los registros.
// Un código persistido que ya no exista en el registro se ignora.
func (uc *DiscountUseCase) Active() (promo, referral *entity.DiscountCode) {
	codes := uc.repo.Get()
	if codes.Promo != "" {
		promo = uc.registry.FindPromo(codes.Promo)
	}
	if codes.Referral != "" {
		referral = uc.registry.FindReferral(codes.Referral)
	}
	return promo, referral
}

// ActiveCodes devuelve los códigos activos tal como están persistidos.
func (uc *DiscountUseCase) ActiveCodes() entity.AppliedCodes {
	return uc.repo.Get()
}

// ComputeTotals calcula subtotal, descuentos y total para las líneas
// dadas y los códigos activos actuales. Se recalcula completo en cada
// mutación (los códigos cambian con independencia del carrito). El
// total se recorta en cero aunque los descuentos superen el subtotal.
func (uc *DiscountUseCase) ComputeTotals(lines []entity.CartLine) Totals {
	subtotal := entity.CartSubtotal(lines)

	t := Totals{
		Subtotal:      subtotal,
		Discounts:     []entity.OrderDiscount{},
		DiscountTotal: decimal.Zero,
	}
	promo, referral := uc.Active()
	for _, code := range []*entity.DiscountCode{promo, referral} {
		if code == nil {
			continue
		}
		amount := code.AmountFor(subtotal)
		t.Discounts = append(t.Discounts, entity.OrderDiscount{
			Code:   code.Code,
			Label:  code.Label,
			Amount: amount,
		})
		t.DiscountTotal = t.DiscountTotal.Add(amount)
	}

	t.Total = subtotal.Sub(t.DiscountTotal)
	if t.Total.IsNegative() {
		t.Total = decimal.Zero
	}
	return t
}
