package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	domcatalog "example.com/storefront/internal/domain/catalog"
	submissionuc "example.com/storefront/internal/usecase/submission"
)

func validPayload(formID string) map[string]any {
	return map[string]any{
		"form_id":     formID,
		"title":       "Classic Tee",
		"price":       "25",
		"description": "Soft cotton tee",
		"category_id": "1",
		"image":       "https://example.com/a.jpg",
	}
}

func openForm(t *testing.T, h http.Handler) map[string]any {
	t.Helper()
	rec := doJSON(t, h, http.MethodGet, "/api/v1/products/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)
}

func TestNewProductForm_ListsCategories(t *testing.T) {
	api, forms := setupAPI(newMockProductRepository(), &mockCategoryRepository{categories: seedCategories()})

	form := openForm(t, api.Router())

	require.NotEmpty(t, form["form_id"])
	require.Equal(t, true, form["usable"])
	require.Len(t, form["categories"].([]any), 2)
	require.Equal(t, 1, forms.Len())
}

func TestNewProductForm_CategoryFailure_EmptySelector(t *testing.T) {
	api, _ := setupAPI(newMockProductRepository(), &mockCategoryRepository{listErr: errStatus500})

	form := openForm(t, api.Router())

	require.NotEmpty(t, form["form_id"], "the form itself still opens")
	require.Equal(t, false, form["usable"])
	require.Empty(t, form["categories"])
}

func TestCreateProduct_ValidPayload_Returns201(t *testing.T) {
	productRepo := newMockProductRepository()
	api, forms := setupAPI(productRepo, &mockCategoryRepository{categories: seedCategories()})
	router := api.Router()
	form := openForm(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", validPayload(form["form_id"].(string)))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "success", body["status"])
	require.Equal(t, submissionuc.MsgSubmitted, body["message"])
	require.Equal(t, "/products", body["redirect"])
	data := body["data"].(map[string]any)
	require.Equal(t, float64(101), data["id"])
	require.Equal(t, 25.0, data["price"])
	require.Equal(t, 1, productRepo.createCalls())
	require.Zero(t, forms.Len(), "a submitted form is closed")
}

func TestCreateProduct_ValidationError_Returns422(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"short title", "title", "abc"},
		{"zero price", "price", "0"},
		{"negative price", "price", "-5"},
		{"overflowing price", "price", "1e400"},
		{"bad image", "image", "not-a-url"},
		{"missing description", "description", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productRepo := newMockProductRepository()
			api, forms := setupAPI(productRepo, &mockCategoryRepository{categories: seedCategories()})
			router := api.Router()
			form := openForm(t, router)

			payload := validPayload(form["form_id"].(string))
			payload[tt.field] = tt.value
			rec := doJSON(t, router, http.MethodPost, "/api/v1/products", payload)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			details := decodeBody(t, rec)["details"].(map[string]any)
			require.Equal(t, tt.field, details["field"])
			require.Zero(t, productRepo.createCalls())
			require.Equal(t, 1, forms.Len(), "the form stays open after a failure")
		})
	}
}

func TestCreateProduct_ServerRejection_Returns422WithServerMessage(t *testing.T) {
	productRepo := newMockProductRepository()
	productRepo.createErr = &domcatalog.StatusError{Status: http.StatusBadRequest, Message: "Category not found"}
	api, _ := setupAPI(productRepo, &mockCategoryRepository{categories: seedCategories()})
	router := api.Router()
	form := openForm(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", validPayload(form["form_id"].(string)))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "Category not found", decodeBody(t, rec)["error"])
}

func TestCreateProduct_NetworkFailure_Returns502Generic(t *testing.T) {
	productRepo := newMockProductRepository()
	productRepo.createErr = errUpstream
	api, _ := setupAPI(productRepo, &mockCategoryRepository{categories: seedCategories()})
	router := api.Router()
	form := openForm(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", validPayload(form["form_id"].(string)))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Equal(t, submissionuc.MsgSubmissionFailed, decodeBody(t, rec)["error"])
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCreateProduct_UnknownForm_Returns404(t *testing.T) {
	productRepo := newMockProductRepository()
	api, _ := setupAPI(productRepo, &mockCategoryRepository{})

	rec := doJSON(t, api.Router(), http.MethodPost, "/api/v1/products", validPayload("does-not-exist"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Zero(t, productRepo.createCalls())
}

func TestCreateProduct_MalformedBody_Returns400(t *testing.T) {
	api, _ := setupAPI(newMockProductRepository(), &mockCategoryRepository{})

	rec := doJSON(t, api.Router(), http.MethodPost, "/api/v1/products", []int{1, 2, 3})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "invalid request body", body["error"])
	require.NotContains(t, rec.Body.String(), "json")
}

func TestCreateProduct_WhileInFlight_Returns409(t *testing.T) {
	productRepo := newMockProductRepository()
	productRepo.block = make(chan struct{})
	productRepo.started = make(chan struct{}, 1)
	api, _ := setupAPI(productRepo, &mockCategoryRepository{categories: seedCategories()})
	router := api.Router()
	form := openForm(t, router)
	formID := form["form_id"].(string)

	first := make(chan int, 1)
	go func() {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/products", validPayload(formID))
		first <- rec.Code
	}()
	<-productRepo.started

	rec := doJSON(t, router, http.MethodPost, "/api/v1/products", validPayload(formID))
	require.Equal(t, http.StatusConflict, rec.Code)

	close(productRepo.block)
	require.Equal(t, http.StatusCreated, <-first)
	require.Equal(t, 1, productRepo.createCalls())
}
