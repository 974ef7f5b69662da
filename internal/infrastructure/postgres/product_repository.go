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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, product_name, description, price, quantity, category, shop_id, created_at, updated_at`

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductName, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.ShopID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByShop devuelve los productos cuyo shop_id coincide exactamente.
func (r *ProductRepo) ListByShop(shopID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE shop_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(context.Background(), query, shopID)
	if err != nil {
		return nil, fmt.Errorf("list products by shop: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Description, &p.Price, &p.Quantity, &p.Category, &p.ShopID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ExistsByID verifica si existe un producto con ese ID.
func (r *ProductRepo) ExistsByID(id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// Save inserta o sobreescribe el producto; timestamps fijados por el storage.
func (r *ProductRepo) Save(p *entity.Product) error {
	query := `
		INSERT INTO products (id, product_name, description, price, quantity, category, shop_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (id) DO UPDATE SET
			product_name = EXCLUDED.product_name, description = EXCLUDED.description,
			price = EXCLUDED.price, quantity = EXCLUDED.quantity,
			category = EXCLUDED.category, shop_id = EXCLUDED.shop_id, updated_at = now()
		RETURNING created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		p.ID, p.ProductName, p.Description, p.Price, p.Quantity, p.Category, p.ShopID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
