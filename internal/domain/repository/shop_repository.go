package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// ShopRepository define el puerto de persistencia para Shop (DIP).
type ShopRepository interface {
	GetByID(id string) (*entity.Shop, error)
	List() ([]*entity.Shop, error)
	ExistsByID(id string) (bool, error)
	Save(shop *entity.Shop) error
	Delete(id string) error
}
