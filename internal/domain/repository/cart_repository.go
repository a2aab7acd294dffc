package repository

import "github.com/vasave/storefront-api/internal/domain/entity"

// CartRepository define el puerto de persistencia del carrito (DIP).
// La colección completa se escribe en cada mutación; el orden de las
// líneas se conserva entre Save y Load.
type CartRepository interface {
	// Load devuelve las líneas persistidas; vacío si no hay nada guardado
	// o si el estado guardado es ilegible (nunca error hacia el caller).
	Load() []entity.CartLine
	Save(lines []entity.CartLine) error
}

// AppliedCodesRepository define el puerto de persistencia de los códigos
// activos. Cada código se persiste de forma independiente.
type AppliedCodesRepository interface {
	Get() entity.AppliedCodes
	Save(codes entity.AppliedCodes) error
}
