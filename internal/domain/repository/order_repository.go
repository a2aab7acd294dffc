package repository

import "github.com/vasave/storefront-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	// GetByID devuelve nil si la orden no existe.
	GetByID(id string) *entity.Order
	// ListByEmail devuelve las órdenes de un email, más reciente primero.
	ListByEmail(email string) []entity.Order
}
