package entity

import "time"

// User representa un usuario del marketplace (cliente o dueño de tiendas).
// Password se almacena en texto plano; el login compara contra este valor
// tal cual.
type User struct {
	ID        string
	Email     string
	Name      string
	Password  string
	Phone     string
	Role      string // texto libre: admin, seller, etc.
	CreatedAt time.Time
	UpdatedAt time.Time
}
