package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por una tienda. ShopID referencia
// a Shop.ID (verificada al crear/actualizar, sin cascada).
type Product struct {
	ID          string
	ProductName string
	Description string
	Price       decimal.Decimal // no negativo
	Quantity    int
	Category    string
	ShopID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
