package repository

import "github.com/jhoicas/marketplace-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// GetByID y GetByEmail devuelven (nil, nil) si el registro no existe.
type UserRepository interface {
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List() ([]*entity.User, error)
	ExistsByID(id string) (bool, error)
	// Save inserta si el ID no existe y sobreescribe si existe.
	// El storage fija CreatedAt/UpdatedAt y los escribe de vuelta en la entidad.
	Save(user *entity.User) error
	Delete(id string) error
}
