package dto

import "time"

// CreateUserRequest entrada para crear un usuario (signup).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// UpdateUserRequest entrada para actualizar un usuario. Name siempre se
// sobreescribe; los campos puntero solo si vienen presentes en el JSON
// (distingue "omitido" de "vacío"). Password vacío no cambia la contraseña.
type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Password *string `json:"password"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario. El contrato con los clientes expone el
// registro completo, password incluido.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
