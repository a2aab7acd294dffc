package repository

import "github.com/vasave/storefront-api/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo (DIP).
// El catálogo es estático; no hay operaciones de escritura.
type CatalogRepository interface {
	// GetByID devuelve nil si el id no existe en el catálogo.
	GetByID(id int) *entity.Product
	// List devuelve los productos en orden de definición; category vacío
	// o "all" devuelve todo.
	List(category string) []entity.Product
}

// CodeRegistry define el puerto de lectura de los registros de códigos.
// Los registros promo y referido son disjuntos e independientes.
type CodeRegistry interface {
	// FindPromo devuelve nil si el código (ya normalizado) no es un promo válido.
	FindPromo(code string) *entity.DiscountCode
	// FindReferral devuelve nil si el código no es un referido válido.
	FindReferral(code string) *entity.DiscountCode
}
