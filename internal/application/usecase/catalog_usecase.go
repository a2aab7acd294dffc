package usecase

import (
	"github.com/vasave/storefront-api/internal/application/dto"
	"github.com/vasave/storefront-api/internal/domain/entity"
	"github.com/vasave/storefront-api/internal/domain/repository"
)

// CatalogUseCase consultas de solo lectura sobre el menú.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List lista el menú, filtrado por categoría si se indica.
func (uc *CatalogUseCase) List(category string) *dto.ProductListResponse {
	products := uc.repo.List(category)
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(&p))
	}
	return &dto.ProductListResponse{Items: items}
}

// GetByID devuelve nil si el producto no existe.
func (uc *CatalogUseCase) GetByID(id int) *dto.ProductResponse {
	return toProductResponse(uc.repo.GetByID(id))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		Description: p.Description,
	}
}
