package entity

import "github.com/shopspring/decimal"

// Categorías del menú (deben coincidir con los filtros de la carta).
const (
	CategoryCoffee  = "coffee"
	CategoryTea     = "tea"
	CategoryPastry  = "pastry"
	CategoryFood    = "food"
	CategoryDessert = "dessert"
)

// Product representa un producto del catálogo de la cafetería.
// El catálogo es estático: se define al arrancar y nunca se muta.
type Product struct {
	ID          int
	Name        string
	Price       decimal.Decimal // precio de venta en USD
	Category    string          // ver constantes Category*
	Image       string          // URI de la imagen
	Description string
}
