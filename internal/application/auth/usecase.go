package auth

import (
	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// UseCase caso de uso de autenticación: login por email y password.
type UseCase struct {
	userRepo repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository) *UseCase {
	return &UseCase{userRepo: userRepo}
}

// Login busca el usuario por email exacto y compara el password almacenado
// contra el recibido en texto plano. Devuelve el registro completo del
// usuario, o ErrUnauthorized si no hay coincidencia.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}
	return usecase.ToUserResponse(user), nil
}
