package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	httpapi "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

const testJWTSecret = "http-test-secret"

// newTestApp levanta la app completa (rutas + middleware) sobre repos en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	users := newMemUserRepo()
	categories := newMemCategoryRepo()
	products := newMemProductRepo()

	hasher := auth.NewHasher()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Algorithm: "HS256", Expiration: 30}

	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		UserUC:     usecase.NewUserUseCase(users, hasher),
		CategoryUC: usecase.NewCategoryUseCase(categories, products),
		ProductUC:  usecase.NewProductUseCase(products, categories),
		AuthUC:     auth.NewAuthUseCase(users, hasher, jwtCfg, log),
		Users:      users,
		JWTSecret:  testJWTSecret,
	})
	return app
}

// doJSON ejecuta una petición JSON contra la app de prueba.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody deserializa el cuerpo de la respuesta en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// decodeInto deserializa el cuerpo de la respuesta en el destino dado.
func decodeInto(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// registerAndLogin registra un usuario y devuelve su access token.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/v1/users", map[string]any{
		"username": "alice",
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPost, "/api/v1/login", map[string]any{
		"email":    email,
		"password": "secret123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// --- repos en memoria (mismo contrato que los de postgres) ---

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
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
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
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
	// cascada: los productos de la categoría caen con ella (FK ON DELETE CASCADE)
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
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
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
