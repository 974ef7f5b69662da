package entity

import "time"

// Shop representa una tienda del marketplace. OwnerUserID referencia a User.ID;
// la referencia se verifica al crear/actualizar pero no se mantiene en cascada.
type Shop struct {
	ID            string
	ShopName      string
	Description   string
	OwnerUserID   string
	ContactNumber string
	Address       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
