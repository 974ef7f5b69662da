package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// ShopUseCase casos de uso CRUD para tiendas. Verifica que OwnerUserID
// resuelva a un usuario existente antes de persistir.
type ShopUseCase struct {
	repo     repository.ShopRepository
	userRepo repository.UserRepository
}

// NewShopUseCase construye el caso de uso.
func NewShopUseCase(repo repository.ShopRepository, userRepo repository.UserRepository) *ShopUseCase {
	return &ShopUseCase{repo: repo, userRepo: userRepo}
}

// Create crea una tienda. Devuelve ErrInvalidReference si el owner no existe;
// en ese caso no se persiste nada.
func (uc *ShopUseCase) Create(in dto.CreateShopRequest) (*dto.ShopResponse, error) {
	exists, err := uc.userRepo.ExistsByID(in.OwnerUserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidReference
	}
	shop := &entity.Shop{
		ID:            uuid.New().String(),
		ShopName:      in.ShopName,
		Description:   in.Description,
		OwnerUserID:   in.OwnerUserID,
		ContactNumber: in.ContactNumber,
		Address:       in.Address,
	}
	if err := uc.repo.Save(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// GetByID obtiene una tienda por ID. Devuelve (nil, nil) si no existe.
func (uc *ShopUseCase) GetByID(id string) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, nil
	}
	return toShopResponse(shop), nil
}

// List devuelve todas las tiendas en orden de inserción.
func (uc *ShopUseCase) List() ([]dto.ShopResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShopResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShopResponse(s))
	}
	return items, nil
}

// Update actualización parcial: cada campo se aplica solo si viene presente.
// Si viene OwnerUserID se verifica la referencia antes de tocar la entidad.
// Devuelve (nil, nil) si la tienda no existe.
func (uc *ShopUseCase) Update(id string, in dto.UpdateShopRequest) (*dto.ShopResponse, error) {
	shop, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, nil
	}
	if in.OwnerUserID != nil {
		exists, err := uc.userRepo.ExistsByID(*in.OwnerUserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrInvalidReference
		}
	}
	if in.ShopName != nil {
		shop.ShopName = *in.ShopName
	}
	if in.Description != nil {
		shop.Description = *in.Description
	}
	if in.OwnerUserID != nil {
		shop.OwnerUserID = *in.OwnerUserID
	}
	if in.ContactNumber != nil {
		shop.ContactNumber = *in.ContactNumber
	}
	if in.Address != nil {
		shop.Address = *in.Address
	}
	if err := uc.repo.Save(shop); err != nil {
		return nil, err
	}
	return toShopResponse(shop), nil
}

// Delete elimina una tienda por ID. Sin cascada sobre productos.
func (uc *ShopUseCase) Delete(id string) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toShopResponse(s *entity.Shop) *dto.ShopResponse {
	if s == nil {
		return nil
	}
	return &dto.ShopResponse{
		ID:            s.ID,
		ShopName:      s.ShopName,
		Description:   s.Description,
		OwnerUserID:   s.OwnerUserID,
		ContactNumber: s.ContactNumber,
		Address:       s.Address,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
