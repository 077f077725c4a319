package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domcategory "example.com/storefront/internal/domain/category"
	domproduct "example.com/storefront/internal/domain/product"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	categoryuc "example.com/storefront/internal/usecase/category"
	submissionuc "example.com/storefront/internal/usecase/submission"
)

// Mock product repository
type mockProductRepository struct {
	mu        sync.Mutex
	products  []*domproduct.Product
	listErr   error
	createErr error
	created   []*domproduct.NewProduct
	nextID    int64
	block     chan struct{}
	started   chan struct{}
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{nextID: 100}
}

func (m *mockProductRepository) List(ctx context.Context, page domproduct.Page) ([]*domproduct.Product, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if len(m.products) > page.Limit {
		return m.products[:page.Limit], nil
	}
	return m.products, nil
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.NewProduct) (*domproduct.Product, error) {
	if m.started != nil {
		m.started <- struct{}{}
	}
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, p)
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.nextID++
	return &domproduct.Product{
		ID:          m.nextID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Images:      p.Images,
		Category:    domproduct.CategoryRef{ID: p.CategoryID},
	}, nil
}

func (m *mockProductRepository) createCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

// Mock category repository
type mockCategoryRepository struct {
	categories []*domcategory.Category
	listErr    error
}

func (m *mockCategoryRepository) List(ctx context.Context, limit int) ([]*domcategory.Category, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

func seedProducts(n int) []*domproduct.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]*domproduct.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &domproduct.Product{
			ID:        int64(i),
			Title:     "Product",
			Price:     float64(10 * i),
			Images:    []string{"https://example.com/p.jpg"},
			Category:  domproduct.CategoryRef{ID: int64(i%2 + 1), Name: "Cat"},
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return out
}

func seedCategories() []*domcategory.Category {
	return []*domcategory.Category{
		{ID: 1, Name: "Clothes", Image: "https://example.com/1.png"},
		{ID: 2, Name: "Electronics", Image: "https://example.com/2.png"},
	}
}

func setupAPI(productRepo *mockProductRepository, categoryRepo *mockCategoryRepository) (*API, *submissionuc.Forms) {
	catalogSvc := cataloguc.NewService(productRepo, categoryRepo, cataloguc.DefaultConfig(), nil)
	loader := categoryuc.NewLoader(categoryRepo, nil)
	forms := submissionuc.NewForms(productRepo, time.Hour, 0, nil)

	api := NewAPI(Dependencies{
		CatalogService:       catalogSvc,
		CategoryLoader:       loader,
		Forms:                forms,
		FormCategoryPageSize: 5,
	})
	return api, forms
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "response should be valid JSON")
	return out
}

var (
	errUpstream  = errors.New("connection refused")
	errStatus500 = &domcatalog.StatusError{Status: http.StatusInternalServerError}
)
