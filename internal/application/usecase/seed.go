package usecase

import (
	"github.com/jhoicas/marketplace-api/internal/application/dto"
)

// SeedAdmin datos del usuario administrador por defecto.
type SeedAdmin struct {
	Email    string
	Name     string
	Password string
	Phone    string
	Role     string
}

// EnsureDefaultAdmin crea el usuario administrador por defecto si aún no
// existe un usuario con ese email. Es idempotente: se invoca en cada arranque
// y pasa por el mismo camino de creación que el endpoint de signup.
// Devuelve true si creó el usuario.
func (uc *UserUseCase) EnsureDefaultAdmin(seed SeedAdmin) (bool, error) {
	existing, err := uc.repo.GetByEmail(seed.Email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.Create(dto.CreateUserRequest{
		Email:    seed.Email,
		Name:     seed.Name,
		Password: seed.Password,
		Phone:    seed.Phone,
		Role:     seed.Role,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
