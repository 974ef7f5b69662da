package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/marketplace-api/internal/application/auth"
	"github.com/jhoicas/marketplace-api/internal/application/usecase"
	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
	apphttp "github.com/jhoicas/marketplace-api/internal/interfaces/http"
)

func init() {
	// Igual que en cmd/api: price se serializa como número JSON.
	decimal.MarshalJSONWithoutQuotes = true
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ShopRepository    = (*memShopRepo)(nil)
	_ repository.ProductRepository = (*memProductRepo)(nil)
)

type memUserRepo struct{ users []*entity.User }

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) { return r.users, nil }

func (r *memUserRepo) ExistsByID(id string) (bool, error) {
	u, _ := r.GetByID(id)
	return u != nil, nil
}

func (r *memUserRepo) Save(u *entity.User) error {
	now := time.Now()
	for i, existing := range r.users {
		if existing.ID == u.ID {
			u.CreatedAt = existing.CreatedAt
			u.UpdatedAt = now
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	u.CreatedAt, u.UpdatedAt = now, now
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

type memShopRepo struct{ shops []*entity.Shop }

func (r *memShopRepo) GetByID(id string) (*entity.Shop, error) {
	for _, s := range r.shops {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memShopRepo) List() ([]*entity.Shop, error) { return r.shops, nil }

func (r *memShopRepo) ExistsByID(id string) (bool, error) {
	s, _ := r.GetByID(id)
	return s != nil, nil
}

func (r *memShopRepo) Save(s *entity.Shop) error {
	now := time.Now()
	for i, existing := range r.shops {
		if existing.ID == s.ID {
			s.CreatedAt = existing.CreatedAt
			s.UpdatedAt = now
			cp := *s
			r.shops[i] = &cp
			return nil
		}
	}
	s.CreatedAt, s.UpdatedAt = now, now
	cp := *s
	r.shops = append(r.shops, &cp)
	return nil
}

func (r *memShopRepo) Delete(id string) error {
	for i, s := range r.shops {
		if s.ID == id {
			r.shops = append(r.shops[:i], r.shops[i+1:]...)
			return nil
		}
	}
	return nil
}

type memProductRepo struct{ products []*entity.Product }

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) { return r.products, nil }

func (r *memProductRepo) ListByShop(shopID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.ShopID == shopID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProductRepo) ExistsByID(id string) (bool, error) {
	p, _ := r.GetByID(id)
	return p != nil, nil
}

func (r *memProductRepo) Save(p *entity.Product) error {
	now := time.Now()
	for i, existing := range r.products {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = now
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	p.CreatedAt, p.UpdatedAt = now, now
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una app Fiber con el router completo sobre fakes en memoria.
func buildTestApp() *fiber.App {
	userRepo := &memUserRepo{}
	shopRepo := &memShopRepo{}
	productRepo := &memProductRepo{}

	userUC := usecase.NewUserUseCase(userRepo)
	shopUC := usecase.NewShopUseCase(shopRepo, userRepo)
	productUC := usecase.NewProductUseCase(productRepo, shopRepo)
	authUC := auth.NewUseCase(userRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		ShopUC:    shopUC,
		ProductUC: productUC,
	})
	return app
}

// doJSON ejecuta una petición con cuerpo JSON opcional contra la app de test.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeJSON decodifica el cuerpo de la respuesta en un mapa genérico.
func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
