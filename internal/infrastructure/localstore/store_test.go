package localstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/infrastructure/localstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "storefront.json")
}

func sampleLines() []entity.CartLine {
	return []entity.CartLine{
		{ProductID: 1, Name: "Signature Cappuccino", Price: decimal.NewFromFloat(5.50), Quantity: 2},
		{ProductID: 3, Name: "Almond Croissant", Price: decimal.NewFromFloat(4.50), Quantity: 1},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Open — arranque
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sin archivo en disco se arranca con estado vacío, sin error.
func TestOpen_ArchivoAusenteArrancaVacio(t *testing.T) {
	store, err := localstore.Open(tempPath(t))

	require.NoError(t, err)
	assert.Empty(t, store.Cart().Load())
	assert.Empty(t, store.Codes().Get().Promo)
	assert.Nil(t, store.Sessions().Get())
	assert.Empty(t, store.Users().List())
}

// Caso 2: contenido ilegible se descarta y se arranca vacío; el estado
// corrupto nunca impide el arranque.
func TestOpen_DocumentoCorruptoArrancaVacio(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	store, err := localstore.Open(path)

	require.NoError(t, err)
	assert.Empty(t, store.Cart().Load())
}

// Caso 3: un documento de otra versión de esquema también se descarta.
func TestOpen_VersionDistintaSeDescarta(t *testing.T) {
	path := tempPath(t)
	raw := []byte(`{"version": 99, "promo_code": "PROMO20", "cart": [], "users": [], "orders": []}`)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	store, err := localstore.Open(path)

	require.NoError(t, err)
	assert.Empty(t, store.Codes().Get().Promo, "el contenido de otra versión se ignora")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests round-trip de cada vista
// ──────────────────────────────────────────────────────────────────────────────

// Lo guardado se recupera idéntico tras reabrir el documento, con el
// orden de las líneas intacto.
func TestStore_RoundTripCarrito(t *testing.T) {
	path := tempPath(t)
	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Cart().Save(sampleLines()))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)

	lines := reopened.Cart().Load()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ProductID, "el orden se conserva")
	assert.Equal(t, 3, lines[1].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, decimal.NewFromFloat(5.50).Equal(lines[0].Price))
}

func TestStore_RoundTripCodigosYSesion(t *testing.T) {
	path := tempPath(t)
	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Codes().Save(entity.AppliedCodes{Promo: "PROMO20", Referral: "REF5"}))
	require.NoError(t, store.Sessions().Set(entity.Session{Name: "Ana", Email: "ana@example.com"}))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)

	codes := reopened.Codes().Get()
	assert.Equal(t, "PROMO20", codes.Promo)
	assert.Equal(t, "REF5", codes.Referral)

	sess := reopened.Sessions().Get()
	require.NotNil(t, sess)
	assert.Equal(t, "ana@example.com", sess.Email)
}

func TestStore_RoundTripUsuariosYOrdenes(t *testing.T) {
	path := tempPath(t)
	store, err := localstore.Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Users().Create(&entity.User{
		ID:        "u-1",
		Name:      "Ana",
		Email:     "ana@example.com",
		UserRef:   "VAS-ABC123",
		CreatedAt: time.Now(),
	}))
	require.NoError(t, store.Orders().Create(&entity.Order{
		ID:        "o-1",
		Number:    "VC-XYZ987",
		Email:     "ana@example.com",
		Lines:     sampleLines(),
		Subtotal:  decimal.NewFromFloat(15.50),
		Total:     decimal.NewFromFloat(15.50),
		CreatedAt: time.Now(),
	}))

	reopened, err := localstore.Open(path)
	require.NoError(t, err)

	user := reopened.Users().GetByEmail("ANA@EXAMPLE.COM")
	require.NotNil(t, user, "la búsqueda por email es case-insensitive")
	assert.Equal(t, "VAS-ABC123", user.UserRef)

	order := reopened.Orders().GetByID("o-1")
	require.NotNil(t, order)
	assert.Equal(t, "VC-XYZ987", order.Number)
	assert.Len(t, order.Lines, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests comportamiento de las vistas
// ──────────────────────────────────────────────────────────────────────────────

// Load devuelve copias: mutar el slice devuelto no toca el documento.
func TestCartRepo_LoadDevuelveCopia(t *testing.T) {
	store, err := localstore.Open(tempPath(t))
	require.NoError(t, err)
	require.NoError(t, store.Cart().Save(sampleLines()))

	lines := store.Cart().Load()
	lines[0].Quantity = 99

	assert.Equal(t, 2, store.Cart().Load()[0].Quantity)
}

func TestSessionRepo_ClearSinSesionEsNoOp(t *testing.T) {
	store, err := localstore.Open(tempPath(t))
	require.NoError(t, err)

	require.NoError(t, store.Sessions().Clear())
	assert.Nil(t, store.Sessions().Get())
}

// ListByEmail filtra por email y devuelve la más reciente primero.
func TestOrderRepo_ListByEmailOrdenInverso(t *testing.T) {
	store, err := localstore.Open(tempPath(t))
	require.NoError(t, err)
	require.NoError(t, store.Orders().Create(&entity.Order{ID: "o-1", Email: "ana@example.com"}))
	require.NoError(t, store.Orders().Create(&entity.Order{ID: "o-2", Email: "otro@example.com"}))
	require.NoError(t, store.Orders().Create(&entity.Order{ID: "o-3", Email: "ana@example.com"}))

	orders := store.Orders().ListByEmail("ana@example.com")

	require.Len(t, orders, 2)
	assert.Equal(t, "o-3", orders[0].ID)
	assert.Equal(t, "o-1", orders[1].ID)
}

// Toda escritura deja un documento completo y legible en disco; los
// temporales del rename atómico no quedan huérfanos.
func TestStore_EscrituraAtomicaSinTemporales(t *testing.T) {
	path := tempPath(t)
	store, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Cart().Save(sampleLines()))

	_, err = os.Stat(path)
	require.NoError(t, err, "el documento debe existir tras la primera escritura")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "solo debe quedar el documento final")
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
