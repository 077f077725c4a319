package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"

	domproduct "example.com/storefront/internal/domain/product"
)

type productDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Images      []string     `json:"images"`
	Category    *categoryDTO `json:"category"`
	CategoryID  int64        `json:"categoryId"`
	CreationAt  string       `json:"creationAt"`
}

type createProductRequest struct {
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	CategoryID  int64    `json:"categoryId"`
	Images      []string `json:"images"`
}

type ProductRepository struct {
	client *Client
}

func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

func (r *ProductRepository) List(ctx context.Context, page domproduct.Page) ([]*domproduct.Product, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(page.Offset))
	query.Set("limit", strconv.Itoa(page.Limit))

	var dtos []productDTO
	if err := r.client.do(ctx, http.MethodGet, "/products", query, nil, &dtos); err != nil {
		return nil, err
	}
	if page.Limit > 0 && len(dtos) > page.Limit {
		dtos = dtos[:page.Limit]
	}

	products := make([]*domproduct.Product, 0, len(dtos))
	for i := range dtos {
		p, err := dtos[i].toDomain()
		if err != nil {
			return nil, errors.Wrapf(err, "products[%d]", i)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.NewProduct) (*domproduct.Product, error) {
	req := createProductRequest{
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Images:      p.Images,
	}

	var dto productDTO
	if err := r.client.do(ctx, http.MethodPost, "/products", nil, req, &dto); err != nil {
		return nil, err
	}
	return dto.toCreated()
}

// toDomain is the strict decode used for listed products: every field the
// views rely on must be present.
func (d *productDTO) toDomain() (*domproduct.Product, error) {
	switch {
	case d.ID <= 0:
		return nil, errors.Wrap(domproduct.ErrMalformedProduct, "missing id")
	case strings.TrimSpace(d.Title) == "":
		return nil, errors.Wrapf(domproduct.ErrMalformedProduct, "product %d: missing title", d.ID)
	case d.Price <= 0:
		return nil, errors.Wrapf(domproduct.ErrMalformedProduct, "product %d: non-positive price", d.ID)
	case d.Category == nil || d.Category.ID <= 0 || d.Category.Name == "":
		return nil, errors.Wrapf(domproduct.ErrMalformedProduct, "product %d: missing category", d.ID)
	}

	createdAt, err := time.Parse(time.RFC3339, d.CreationAt)
	if err != nil {
		return nil, errors.Wrapf(domproduct.ErrMalformedProduct, "product %d: bad creationAt %q", d.ID, d.CreationAt)
	}

	return &domproduct.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Images:      cleanImages(d.Images),
		Category: domproduct.CategoryRef{
			ID:   d.Category.ID,
			Name: d.Category.Name,
		},
		CreatedAt: createdAt,
	}, nil
}

// toCreated decodes the echo of a create request. Only the assigned id is
// mandatory; the service does not always expand the category.
func (d *productDTO) toCreated() (*domproduct.Product, error) {
	if d.ID <= 0 {
		return nil, errors.Wrap(domproduct.ErrMalformedProduct, "created product has no id")
	}

	p := &domproduct.Product{
		ID:          d.ID,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Images:      cleanImages(d.Images),
		Category:    domproduct.CategoryRef{ID: d.CategoryID},
	}
	if d.Category != nil {
		p.Category = domproduct.CategoryRef{ID: d.Category.ID, Name: d.Category.Name}
	}
	if t, err := time.Parse(time.RFC3339, d.CreationAt); err == nil {
		p.CreatedAt = t
	}
	return p, nil
}

// cleanImages drops empty entries and unwraps the stringified JSON arrays
// (`["https://..."]`) some seeded products carry.
func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		img = strings.Trim(strings.TrimSpace(img), `[]"`)
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}
