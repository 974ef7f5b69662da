package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Price y Quantity son
// punteros para distinguir "0" de "ausente": ambos son obligatorios pero cero
// es un valor válido.
type CreateProductRequest struct {
	ProductName string           `json:"productName" validate:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required"`
	Category    string           `json:"category"`
	ShopID      string           `json:"shopId" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (totalmente parcial).
type UpdateProductRequest struct {
	ProductName *string          `json:"productName"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	ShopID      *string          `json:"shopId"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	ShopID      string          `json:"shopId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
