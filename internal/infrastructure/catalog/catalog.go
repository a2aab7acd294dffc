// Package catalog contiene los datos estáticos de la tienda: el menú de
// Vasave Cafe y los registros de códigos de descuento. Todo es de solo
// lectura en runtime.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vasave/storefront-api/internal/domain/entity"
)

// products menú completo, en orden de presentación.
var products = []entity.Product{
	{
		ID:          1,
		Name:        "Signature Cappuccino",
		Price:       decimal.NewFromFloat(5.50),
		Category:    entity.CategoryCoffee,
		Image:       "https://images.unsplash.com/photo-1534778101976-62847782c213?q=80&w=800&auto=format&fit=crop",
		Description: "Our signature blend espresso topped with microfoam milk and a dusting of cocoa.",
	},
	{
		ID:          2,
		Name:        "Caramel Macchiato",
		Price:       decimal.NewFromFloat(6.00),
		Category:    entity.CategoryCoffee,
		Image:       "https://images.unsplash.com/photo-1509042239860-f550ce710b93?q=80&w=800&auto=format&fit=crop",
		Description: "Freshly steamed milk with vanilla-flavored syrup marked with espresso and topped with a caramel drizzle.",
	},
	{
		ID:          3,
		Name:        "Almond Croissant",
		Price:       decimal.NewFromFloat(4.50),
		Category:    entity.CategoryPastry,
		Image:       "https://images.unsplash.com/photo-1555507036-ab1f4038808a?q=80&w=800&auto=format&fit=crop",
		Description: "Buttery, flaky croissant filled with sweet almond frangipane and topped with toasted almonds.",
	},
	{
		ID:          4,
		Name:        "Avocado Toast",
		Price:       decimal.NewFromFloat(9.50),
		Category:    entity.CategoryFood,
		Image:       "https://images.unsplash.com/photo-1603046891726-36bfd957e0bf?q=80&w=800&auto=format&fit=crop",
		Description: "Sourdough bread topped with smashed avocado, cherry tomatoes, radish, and a sprinkle of chili flakes.",
	},
	{
		ID:          5,
		Name:        "Berry Cheesecake",
		Price:       decimal.NewFromFloat(7.00),
		Category:    entity.CategoryDessert,
		Image:       "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?q=80&w=800&auto=format&fit=crop",
		Description: "Creamy New York style cheesecake topped with a fresh mixed berry compote.",
	},
	{
		ID:          6,
		Name:        "Matcha Latte",
		Price:       decimal.NewFromFloat(6.50),
		Category:    entity.CategoryTea,
		Image:       "https://images.unsplash.com/photo-1505252585461-04db1eb84625?q=80&w=800&auto=format&fit=crop",
		Description: "Premium ceremonial grade matcha whisked with milk and served over ice for a refreshing antioxidant boost.",
	},
	{
		ID:          7,
		Name:        "Cold Brew",
		Price:       decimal.NewFromFloat(5.00),
		Category:    entity.CategoryCoffee,
		Image:       "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?q=80&w=800&auto=format&fit=crop",
		Description: "Steeped for 18 hours in cold water for a super smooth, full-bodied coffee with low acidity.",
	},
	{
		ID:          8,
		Name:        "Belgian Waffle",
		Price:       decimal.NewFromFloat(8.50),
		Category:    entity.CategoryFood,
		Image:       "https://images.unsplash.com/photo-1562376552-0d160a2f238d?q=80&w=800&auto=format&fit=crop",
		Description: "Thick, fluffy waffle topped with fresh strawberries, whipped cream, and warm maple syrup.",
	},
}

// Catalog implementa repository.CatalogRepository sobre el menú estático.
type Catalog struct {
	byID map[int]entity.Product
}

// New construye el catálogo indexado por id.
func New() *Catalog {
	byID := make(map[int]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{byID: byID}
}

// GetByID devuelve nil si el id no existe.
func (c *Catalog) GetByID(id int) *entity.Product {
	p, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &p
}

// List devuelve los productos en orden de presentación, filtrados por
// categoría si se indica una distinta de "" o "all".
func (c *Catalog) List(category string) []entity.Product {
	if category == "" || category == "all" {
		out := make([]entity.Product, len(products))
		copy(out, products)
		return out
	}
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
