package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo implementación del puerto ShopRepository sobre PostgreSQL.
type ShopRepo struct {
	pool *pgxpool.Pool
}

// NewShopRepository construye el adaptador de persistencia para tiendas.
func NewShopRepository(pool *pgxpool.Pool) *ShopRepo {
	return &ShopRepo{pool: pool}
}

// GetByID obtiene una tienda por ID. Devuelve (nil, nil) si no existe.
func (r *ShopRepo) GetByID(id string) (*entity.Shop, error) {
	query := `
		SELECT id, shop_name, description, owner_user_id, contact_number, address, created_at, updated_at
		FROM shops WHERE id = $1`
	var s entity.Shop
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ShopName, &s.Description, &s.OwnerUserID, &s.ContactNumber, &s.Address,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop by id: %w", err)
	}
	return &s, nil
}

// List devuelve todas las tiendas en orden de inserción.
func (r *ShopRepo) List() ([]*entity.Shop, error) {
	query := `
		SELECT id, shop_name, description, owner_user_id, contact_number, address, created_at, updated_at
		FROM shops ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shop
	for rows.Next() {
		var s entity.Shop
		if err := rows.Scan(&s.ID, &s.ShopName, &s.Description, &s.OwnerUserID, &s.ContactNumber, &s.Address, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ExistsByID verifica si existe una tienda con ese ID.
func (r *ShopRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM shops WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists shop: %w", err)
	}
	return exists, nil
}

// Save inserta o sobreescribe la tienda; timestamps fijados por el storage.
func (r *ShopRepo) Save(s *entity.Shop) error {
	query := `
		INSERT INTO shops (id, shop_name, description, owner_user_id, contact_number, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			shop_name = EXCLUDED.shop_name, description = EXCLUDED.description,
			owner_user_id = EXCLUDED.owner_user_id, contact_number = EXCLUDED.contact_number,
			address = EXCLUDED.address, updated_at = now()
		RETURNING created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		s.ID, s.ShopName, s.Description, s.OwnerUserID, s.ContactNumber, s.Address,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save shop: %w", err)
	}
	return nil
}

// Delete elimina una tienda por ID.
func (r *ShopRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop: %w", err)
	}
	return nil
}
