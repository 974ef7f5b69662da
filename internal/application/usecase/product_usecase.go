package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Verifica que ShopID
// resuelva a una tienda existente antes de persistir.
type ProductUseCase struct {
	repo     repository.ProductRepository
	shopRepo repository.ShopRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, shopRepo repository.ShopRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, shopRepo: shopRepo}
}

// Create crea un producto. Devuelve ErrInvalidReference si la tienda no
// existe y ErrInvalidInput si el precio es negativo; no persiste en esos casos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	exists, err := uc.shopRepo.ExistsByID(in.ShopID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidReference
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		ProductName: in.ProductName,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Category:    in.Category,
		ShopID:      in.ShopID,
	}
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos. Con shopID filtra por coincidencia exacta de tienda;
// vacío devuelve todos.
func (uc *ProductUseCase) List(shopID string) ([]dto.ProductResponse, error) {
	var (
		list []*entity.Product
		err  error
	)
	if shopID != "" {
		list, err = uc.repo.ListByShop(shopID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualización parcial. Si viene ShopID se verifica la referencia
// antes de aplicar cualquier cambio. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.ShopID != nil {
		exists, err := uc.shopRepo.ExistsByID(*in.ShopID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrInvalidReference
		}
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ShopID != nil {
		product.ShopID = *in.ShopID
	}
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		ShopID:      p.ShopID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
