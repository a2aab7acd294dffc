package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// ProductListResponse lista de productos (filtrada por categoría o completa).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
