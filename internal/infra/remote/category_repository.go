package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	domcategory "example.com/storefront/internal/domain/category"
)

type categoryDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type CategoryRepository struct {
	client *Client
}

func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

func (r *CategoryRepository) List(ctx context.Context, limit int) ([]*domcategory.Category, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var dtos []categoryDTO
	if err := r.client.do(ctx, http.MethodGet, "/categories", query, nil, &dtos); err != nil {
		return nil, err
	}
	if limit > 0 && len(dtos) > limit {
		dtos = dtos[:limit]
	}

	categories := make([]*domcategory.Category, 0, len(dtos))
	for i, d := range dtos {
		if d.ID <= 0 || strings.TrimSpace(d.Name) == "" {
			return nil, errors.Wrapf(domcategory.ErrMalformedCategory, "categories[%d]", i)
		}
		categories = append(categories, &domcategory.Category{
			ID:    d.ID,
			Name:  d.Name,
			Image: d.Image,
		})
	}
	return categories, nil
}
