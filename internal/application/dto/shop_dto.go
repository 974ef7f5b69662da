package dto

import "time"

// CreateShopRequest entrada para crear una tienda.
type CreateShopRequest struct {
	ShopName      string `json:"shopName" validate:"required"`
	Description   string `json:"description"`
	OwnerUserID   string `json:"ownerUserId" validate:"required"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

// UpdateShopRequest entrada para actualizar una tienda. Actualización parcial:
// cada campo es independiente y solo se aplica si viene presente.
type UpdateShopRequest struct {
	ShopName      *string `json:"shopName"`
	Description   *string `json:"description"`
	OwnerUserID   *string `json:"ownerUserId"`
	ContactNumber *string `json:"contactNumber"`
	Address       *string `json:"address"`
}

// ShopResponse salida de una tienda.
type ShopResponse struct {
	ID            string    `json:"id"`
	ShopName      string    `json:"shopName"`
	Description   string    `json:"description"`
	OwnerUserID   string    `json:"ownerUserId"`
	ContactNumber string    `json:"contactNumber"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
