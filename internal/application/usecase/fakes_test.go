package usecase_test

import (
	"time"

	"github.com/jhoicas/marketplace-api/internal/domain/entity"
	"github.com/jhoicas/marketplace-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican el contrato del
// gateway: Save hace upsert y fija los timestamps (CreatedAt solo al insertar),
// los Get devuelven (nil, nil) si no existe, los listados respetan el orden de
// inserción.

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.ShopRepository    = (*fakeShopRepo)(nil)
	_ repository.ProductRepository = (*fakeProductRepo)(nil)
)

type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, id := range f.order {
		if f.users[id].Email == email {
			cp := *f.users[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	list := make([]*entity.User, 0, len(f.order))
	for _, id := range f.order {
		cp := *f.users[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeUserRepo) ExistsByID(id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Save(u *entity.User) error {
	now := time.Now()
	if existing, ok := f.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = now
		f.order = append(f.order, u.ID)
	}
	u.UpdatedAt = now
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeShopRepo struct {
	shops map[string]*entity.Shop
	order []string
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: make(map[string]*entity.Shop)}
}

func (f *fakeShopRepo) GetByID(id string) (*entity.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShopRepo) List() ([]*entity.Shop, error) {
	list := make([]*entity.Shop, 0, len(f.order))
	for _, id := range f.order {
		cp := *f.shops[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeShopRepo) ExistsByID(id string) (bool, error) {
	_, ok := f.shops[id]
	return ok, nil
}

func (f *fakeShopRepo) Save(s *entity.Shop) error {
	now := time.Now()
	if existing, ok := f.shops[s.ID]; ok {
		s.CreatedAt = existing.CreatedAt
	} else {
		s.CreatedAt = now
		f.order = append(f.order, s.ID)
	}
	s.UpdatedAt = now
	cp := *s
	f.shops[s.ID] = &cp
	return nil
}

func (f *fakeShopRepo) Delete(id string) error {
	delete(f.shops, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(f.order))
	for _, id := range f.order {
		cp := *f.products[id]
		list = append(list, &cp)
	}
	return list, nil
}

func (f *fakeProductRepo) ListByShop(shopID string) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, id := range f.order {
		if f.products[id].ShopID == shopID {
			cp := *f.products[id]
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (f *fakeProductRepo) ExistsByID(id string) (bool, error) {
	_, ok := f.products[id]
	return ok, nil
}

func (f *fakeProductRepo) Save(p *entity.Product) error {
	now := time.Now()
	if existing, ok := f.products[p.ID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		p.CreatedAt = now
		f.order = append(f.order, p.ID)
	}
	p.UpdatedAt = now
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
