package usecase_test

import (
	"sort"
	"sync"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// Repositorios en memoria para las pruebas de los use cases.
// Replican el contrato de los repos de postgres: Get* devuelve (nil, nil)
// cuando no hay registro y Create normaliza la clave duplicada a ErrDuplicate.

type memUserRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	createErr error // si se setea, Create lo devuelve (simula carrera perdida)
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *memUserRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List() ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByName(name string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func (r *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0)
	for _, p := range r.products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.products), nil
}

func (r *memProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func paginate[T any](all []*T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
