package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// ListByShop devuelve los productos cuyo ShopID coincide exactamente.
	ListByShop(shopID string) ([]*entity.Product, error)
	ExistsByID(id string) (bool, error)
	Save(product *entity.Product) error
	Delete(id string) error
}
