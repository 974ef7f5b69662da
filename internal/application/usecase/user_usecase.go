package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/marketplace-api/internal/application/dto"
	"github.com/jhoicas/marketplace-api/internal/domain"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario con ID nuevo. No valida unicidad de email; el
// login resuelve por primera coincidencia en orden de inserción.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := &entity.User{
		ID:       uuid.New().String(),
		Email:    in.Email,
		Name:     in.Name,
		Password: in.Password,
		Phone:    in.Phone,
		Role:     in.Role,
	}
	if err := uc.repo.Save(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return ToUserResponse(user), nil
}

// List devuelve todos los usuarios en orden de inserción.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return items, nil
}

// Update actualiza un usuario. Name siempre se sobreescribe; password solo si
// viene presente y no vacío; phone y role solo si vienen presentes.
// Devuelve (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	user.Name = in.Name
	if in.Password != nil && *in.Password != "" {
		user.Password = *in.Password
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if err := uc.repo.Save(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Delete elimina un usuario por ID. No hay cascada sobre las tiendas que
// referencian al usuario; las referencias colgantes están permitidas.
func (uc *UserUseCase) Delete(id string) error {
	exists, err := uc.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ToUserResponse mapea la entidad al DTO de salida (password incluido, ver dto).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Password:  u.Password,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
