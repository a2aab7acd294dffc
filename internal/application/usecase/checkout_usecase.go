package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/domain"
	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/domain/repository"
)

// ReceiptGenerator puerto para la generación del recibo PDF de una orden.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order) ([]byte, error)
}

// CheckoutUseCase confirma la orden: valida envío y tarjeta, espera el
// tiempo de "procesamiento" simulado, persiste la orden y limpia
// carrito y códigos activos.
type CheckoutUseCase struct {
	cart      *CartUseCase
	discounts *DiscountUseCase
	orders    repository.OrderRepository
	receipts  ReceiptGenerator
	delay     time.Duration // latencia simulada del procesamiento de pago
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(cart *CartUseCase, discounts *DiscountUseCase, orders repository.OrderRepository, receipts ReceiptGenerator, delay time.Duration) *CheckoutUseCase {
	return &CheckoutUseCase{cart: cart, discounts: discounts, orders: orders, receipts: receipts, delay: delay}
}

// validate revisa campos requeridos y el formato de la tarjeta. Los
// datos de tarjeta solo se validan; nunca se guardan.
func validateCheckout(in dto.CheckoutRequest) error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"address", in.Address},
		{"city", in.City},
		{"card_number", in.CardNumber},
		{"card_expiry", in.CardExpiry},
		{"card_cvv", in.CardCVV},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: falta el campo %s", domain.ErrInvalidInput, r.field)
		}
	}

	digits := strings.ReplaceAll(strings.ReplaceAll(in.CardNumber, " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 || !allDigits(digits) {
		return fmt.Errorf("%w: número de tarjeta inválido", domain.ErrInvalidInput)
	}
	if len(in.CardExpiry) != 5 || in.CardExpiry[2] != '/' ||
		!allDigits(in.CardExpiry[:2]) || !allDigits(in.CardExpiry[3:]) {
		return fmt.Errorf("%w: vencimiento inválido (MM/YY)", domain.ErrInvalidInput)
	}
	if (len(in.CardCVV) != 3 && len(in.CardCVV) != 4) || !allDigits(in.CardCVV) {
		return fmt.Errorf("%w: cvv inválido", domain.ErrInvalidInput)
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// PlaceOrder ejecuta el checkout completo. Carrito vacío devuelve
// ErrEmptyCart. La espera simulada respeta la cancelación del contexto.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	lines := uc.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if err := validateCheckout(in); err != nil {
		return nil, err
	}

	totals := uc.discounts.ComputeTotals(lines)

	if uc.delay > 0 {
		timer := time.NewTimer(uc.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	id := uuid.New().String()
	order := &entity.Order{
		ID:        id,
		Number:    "VC-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:6]),
		Email:     strings.TrimSpace(in.Email),
		Name:      strings.TrimSpace(in.Name),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		Lines:     lines,
		Discounts: totals.Discounts,
		Subtotal:  totals.Subtotal,
		Total:     totals.Total,
		CreatedAt: time.Now(),
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}

	// Orden confirmada: el carrito y los códigos activos se limpian.
	if err := uc.cart.Clear(); err != nil {
		return nil, err
	}
	if err := uc.discounts.ClearCodes(); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Receipt genera el PDF del recibo. El email debe coincidir con el de
// la orden (el recibo solo es visible para quien la hizo).
func (uc *CheckoutUseCase) Receipt(ctx context.Context, orderID, email string) ([]byte, error) {
	order := uc.orders.GetByID(orderID)
	if order == nil || !strings.EqualFold(order.Email, email) {
		return nil, domain.ErrNotFound
	}
	return uc.receipts.GenerateReceiptPDF(ctx, order)
}

// ListOrders historial de órdenes del email dado, más reciente primero.
func (uc *CheckoutUseCase) ListOrders(email string) *dto.OrderListResponse {
	orders := uc.orders.ListByEmail(email)
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *toOrderResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Items: items}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	lines := make([]dto.OrderLineResponse, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
		})
	}
	discounts := make([]dto.OrderDiscountResponse, 0, len(o.Discounts))
	for _, d := range o.Discounts {
		discounts = append(discounts, dto.OrderDiscountResponse{
			Code:   d.Code,
			Label:  d.Label,
			Amount: d.Amount,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Number:    o.Number,
		Email:     o.Email,
		Lines:     lines,
		Discounts: discounts,
		Subtotal:  o.Subtotal,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	}
}
