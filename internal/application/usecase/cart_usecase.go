package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/domain/repository"
)

// Notifier puerto para la notificación transitoria en pantalla.
// La implementación (toast con auto-descarte) vive en infrastructure.
type Notifier interface {
	Notify(message string)
}

// CartUseCase operaciones del carrito. Toda mutación persiste la
// colección completa antes de devolver.
type CartUseCase struct {
	catalog  repository.CatalogRepository
	repo     repository.CartRepository
	notifier Notifier
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(catalog repository.CatalogRepository, repo repository.CartRepository, notifier Notifier) *CartUseCase {
	return &CartUseCase{catalog: catalog, repo: repo, notifier: notifier}
}

// AddItem agrega quantity unidades del producto al carrito. Un id
// desconocido es un no-op silencioso. Si ya existe una línea para ese
// producto se suma la cantidad; si no, se crea la línea copiando
// nombre, precio e imagen actuales del catálogo. quantity <= 0 cuenta
// como 1.
func (uc *CartUseCase) AddItem(productID, quantity int) error {
	product := uc.catalog.GetByID(productID)
	if product == nil {
		return nil
	}
	if quantity <= 0 {
		quantity = 1
	}

	lines := uc.repo.Load()
	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, entity.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}
	if err := uc.repo.Save(lines); err != nil {
		return err
	}
	uc.notifier.Notify(product.Name + " added to cart!")
	return nil
}

// RemoveItem elimina la línea del producto; no-op si no está en el carrito.
func (uc *CartUseCase) RemoveItem(productID int) error {
	lines := uc.repo.Load()
	kept := lines[:0]
	found := false
	for _, l := range lines {
		if l.ProductID == productID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return nil
	}
	return uc.repo.Save(kept)
}

// ChangeQuantity suma delta (con signo) a la cantidad de la línea. Si la
// cantidad resultante queda en <= 0 equivale a RemoveItem. No-op si el
// producto no está en el carrito.
func (uc *CartUseCase) ChangeQuantity(productID, delta int) error {
	lines := uc.repo.Load()
	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if lines[i].Quantity+delta <= 0 {
			return uc.RemoveItem(productID)
		}
		lines[i].Quantity += delta
		return uc.repo.Save(lines)
	}
	return nil
}

// Lines devuelve las líneas actuales en orden de inserción.
func (uc *CartUseCase) Lines() []entity.CartLine {
	return uc.repo.Load()
}

// Subtotal suma price * quantity de todas las líneas. Puro.
func (uc *CartUseCase) Subtotal() decimal.Decimal {
	return entity.CartSubtotal(uc.repo.Load())
}

// Clear vacía el carrito (lo usa el checkout al confirmar la orden).
func (uc *CartUseCase) Clear() error {
	return uc.repo.Save(nil)
}
