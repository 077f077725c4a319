package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-faster/errors"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domproduct "example.com/storefront/internal/domain/product"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	categoryuc "example.com/storefront/internal/usecase/category"
	submissionuc "example.com/storefront/internal/usecase/submission"
)

type API struct {
	catalogSvc           *cataloguc.Service
	categoryLoader       *categoryuc.Loader
	forms                *submissionuc.Forms
	formCategoryPageSize int
	logger               *slog.Logger
}

type Dependencies struct {
	CatalogService       *cataloguc.Service
	CategoryLoader       *categoryuc.Loader
	Forms                *submissionuc.Forms
	FormCategoryPageSize int
	Logger               *slog.Logger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	pageSize := deps.FormCategoryPageSize
	if pageSize <= 0 {
		pageSize = 5
	}
	return &API{
		catalogSvc:           deps.CatalogService,
		categoryLoader:       deps.CategoryLoader,
		forms:                deps.Forms,
		formCategoryPageSize: pageSize,
		logger:               logger,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/home", a.handleHome)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/new", a.handleNewProductForm)
		r.Post("/products", a.handleCreateProduct)
	})

	return r
}

func (a *API) decode(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

var (
	errFormNotFound = errors.New("form not found")
	errInvalidBody  = errors.New("invalid request body")
)

// handleDomainError maps core errors to responses. Only user-safe messages
// leave this function; raw causes are already logged by the use cases.
func handleDomainError(w http.ResponseWriter, err error) {
	var (
		ve *domproduct.ValidationError
		se *domproduct.SubmissionError
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   ve.Error(),
			Details: map[string]string{"field": ve.Field},
		})
	case errors.As(err, &se):
		status := http.StatusBadGateway
		if se.Status != 0 {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, errorResponse{Error: se.Message})
	case errors.Is(err, domproduct.ErrSubmissionInFlight):
		respondError(w, http.StatusConflict, err)
	case errors.Is(err, errFormNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcatalog.ErrFetch):
		respondError(w, http.StatusBadGateway, domcatalog.ErrFetch)
	default:
		respondError(w, http.StatusInternalServerError, errors.New("internal error"))
	}
}
