package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/application/usecase"
	"github.com/vasave/storefront-api/internal/domain"
	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/infrastructure/localstore"
)

// fakeReceipts genera un PDF de mentira y registra las órdenes pedidas.
type fakeReceipts struct {
	generated []string
}

func (f *fakeReceipts) GenerateReceiptPDF(_ context.Context, order *entity.Order) ([]byte, error) {
	f.generated = append(f.generated, order.ID)
	return []byte("%PDF-1.7 fake"), nil
}

// newCheckoutUC arma el checkout completo con delay configurable.
func newCheckoutUC(t *testing.T, delay time.Duration) (*usecase.CheckoutUseCase, *usecase.CartUseCase, *usecase.DiscountUseCase, *localstore.Store, *fakeReceipts) {
	t.Helper()
	cartUC, _, store := newCartUC(t)
	discountUC := newDiscountUC(t, store)
	receipts := &fakeReceipts{}
	uc := usecase.NewCheckoutUseCase(cartUC, discountUC, store.Orders(), receipts, delay)
	return uc, cartUC, discountUC, store, receipts
}

func validCheckout() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		Name:       "Ana Pérez",
		Email:      "ana@example.com",
		Address:    "Calle 10 #4-21",
		City:       "Bogotá",
		CardNumber: "4242 4242 4242 4242",
		CardExpiry: "12/27",
		CardCVV:    "123",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PlaceOrder — validación
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: carrito vacío → ErrEmptyCart antes de cualquier validación.
func TestPlaceOrder_CarritoVacioRetornaErrEmptyCart(t *testing.T) {
	uc, _, _, _, _ := newCheckoutUC(t, 0)

	_, err := uc.PlaceOrder(context.Background(), validCheckout())

	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// Caso 2: cualquier campo requerido vacío → ErrInvalidInput.
func TestPlaceOrder_CampoRequeridoVacio(t *testing.T) {
	uc, cartUC, _, _, _ := newCheckoutUC(t, 0)
	require.NoError(t, cartUC.AddItem(1, 1))

	in := validCheckout()
	in.Address = "   "
	_, err := uc.PlaceOrder(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotEmpty(t, cartUC.Lines(), "el carrito no debe vaciarse en un rechazo")
}

// Caso 3: tarjeta con formato inválido → ErrInvalidInput.
func TestPlaceOrder_TarjetaInvalida(t *testing.T) {
	uc, cartUC, _, _, _ := newCheckoutUC(t, 0)
	require.NoError(t, cartUC.AddItem(1, 1))

	casos := []func(*dto.CheckoutRequest){
		func(in *dto.CheckoutRequest) { in.CardNumber = "1234" },                 // muy corta
		func(in *dto.CheckoutRequest) { in.CardNumber = "4242abcd42424242" },    // no numérica
		func(in *dto.CheckoutRequest) { in.CardExpiry = "13-27" },               // separador inválido
		func(in *dto.CheckoutRequest) { in.CardExpiry = "1/27" },                // formato corto
		func(in *dto.CheckoutRequest) { in.CardCVV = "12" },                     // cvv corto
		func(in *dto.CheckoutRequest) { in.CardCVV = "12a" },                    // cvv no numérico
		func(in *dto.CheckoutRequest) { in.CardNumber = "42424242424242424242" }, // muy larga (20)
	}
	for _, mutate := range casos {
		in := validCheckout()
		mutate(&in)
		_, err := uc.PlaceOrder(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Caso 4: el número de tarjeta admite espacios y guiones como separadores.
func TestPlaceOrder_TarjetaConSeparadoresEsValida(t *testing.T) {
	uc, cartUC, _, _, _ := newCheckoutUC(t, 0)
	require.NoError(t, cartUC.AddItem(1, 1))

	in := validCheckout()
	in.CardNumber = "4242-4242-4242-4242"
	resp, err := uc.PlaceOrder(context.Background(), in)

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Number)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PlaceOrder — orden confirmada
// ──────────────────────────────────────────────────────────────────────────────

// El flujo completo: totales con promo y referido, orden persistida,
// carrito y códigos limpios al confirmar.
func TestPlaceOrder_ConfirmaPersisteYLimpia(t *testing.T) {
	uc, cartUC, discountUC, store, _ := newCheckoutUC(t, 0)
	require.NoError(t, cartUC.AddItem(1, 2)) // $11.00
	require.NoError(t, cartUC.AddItem(3, 1)) // $4.50
	_, err := discountUC.ApplyPromo("PROMO20")
	require.NoError(t, err)
	_, err = discountUC.ApplyReferral("REF5")
	require.NoError(t, err)

	resp, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)

	decimalEqual(t, "15.50", resp.Subtotal)
	decimalEqual(t, "7.40", resp.Total)
	require.Len(t, resp.Discounts, 2)
	assert.Equal(t, "PROMO20", resp.Discounts[0].Code)
	assert.Equal(t, "REF5", resp.Discounts[1].Code)
	assert.True(t, len(resp.Number) > 3 && resp.Number[:3] == "VC-",
		"el número de orden lleva el prefijo VC-")

	// La orden queda en el historial con las líneas del carrito.
	persisted := store.Orders().GetByID(resp.ID)
	require.NotNil(t, persisted)
	assert.Len(t, persisted.Lines, 2)
	decimalEqual(t, "7.40", persisted.Total)

	// Carrito y códigos se limpian al confirmar.
	assert.Empty(t, cartUC.Lines())
	assert.Empty(t, discountUC.ActiveCodes().Promo)
	assert.Empty(t, discountUC.ActiveCodes().Referral)
}

// La espera simulada respeta la cancelación del contexto: la orden no
// se persiste y nada se limpia.
func TestPlaceOrder_ContextoCanceladoAbortaSinPersistir(t *testing.T) {
	uc, cartUC, _, store, _ := newCheckoutUC(t, 5*time.Second)
	require.NoError(t, cartUC.AddItem(1, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.PlaceOrder(ctx, validCheckout())

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotEmpty(t, cartUC.Lines(), "el carrito debe conservarse")
	assert.Empty(t, store.Orders().ListByEmail("ana@example.com"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Receipt / ListOrders
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_SoloParaElEmailDeLaOrden(t *testing.T) {
	uc, cartUC, _, _, receipts := newCheckoutUC(t, 0)
	require.NoError(t, cartUC.AddItem(1, 1))
	resp, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)

	// El dueño (case-insensitive) obtiene el PDF.
	pdf, err := uc.Receipt(context.Background(), resp.ID, "ANA@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, []string{resp.ID}, receipts.generated)

	// Otro email → ErrNotFound, sin filtrar que la orden existe.
	_, err = uc.Receipt(context.Background(), resp.ID, "otra@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Orden inexistente → ErrNotFound.
	_, err = uc.Receipt(context.Background(), "no-existe", "ana@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ListOrders devuelve solo las órdenes del email, más reciente primero.
func TestListOrders_MasRecientePrimero(t *testing.T) {
	uc, cartUC, _, _, _ := newCheckoutUC(t, 0)

	require.NoError(t, cartUC.AddItem(1, 1))
	primera, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)

	require.NoError(t, cartUC.AddItem(3, 2))
	segunda, err := uc.PlaceOrder(context.Background(), validCheckout())
	require.NoError(t, err)

	// Una orden de otro cliente no debe aparecer.
	require.NoError(t, cartUC.AddItem(7, 1))
	otra := validCheckout()
	otra.Email = "otro@example.com"
	_, err = uc.PlaceOrder(context.Background(), otra)
	require.NoError(t, err)

	list := uc.ListOrders("ana@example.com")
	require.Len(t, list.Items, 2)
	assert.Equal(t, segunda.ID, list.Items[0].ID, "la más reciente va primero")
	assert.Equal(t, primera.ID, list.Items[1].ID)
}
