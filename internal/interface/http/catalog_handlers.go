package http

import (
	"net/http"

	domcategory "example.com/storefront/internal/domain/category"
	domproduct "example.com/storefront/internal/domain/product"
	cataloguc "example.com/storefront/internal/usecase/catalog"
)

func (a *API) handleHome(w http.ResponseWriter, r *http.Request) {
	view, err := a.catalogSvc.Home(r.Context())
	if err != nil {
		// The page still renders, just empty.
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "could not load data",
			Data: map[string]any{
				"featured":   []any{},
				"categories": []any{},
				"latest":     []any{},
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"featured":   mapProducts(view.Featured),
		"categories": mapCategories(view.Categories),
		"latest":     mapProducts(view.Latest),
	}})
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	view, err := a.catalogSvc.Listing(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "could not load data",
			Data: map[string]any{
				"products": []any{},
				"groups":   []any{},
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
		"products": mapProducts(view.Products),
		"groups":   mapGroups(view.Groups),
	}})
}

func mapProduct(p *domproduct.Product) map[string]any {
	return map[string]any{
		"id":            p.ID,
		"title":         p.Title,
		"price":         p.Price,
		"description":   p.Description,
		"images":        p.Images,
		"primary_image": p.PrimaryImage(),
		"category": map[string]any{
			"id":   p.Category.ID,
			"name": p.Category.Name,
		},
	}
}

func mapProducts(products []*domproduct.Product) []map[string]any {
	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	return resp
}

func mapCategories(categories []*domcategory.Category) []map[string]any {
	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, map[string]any{
			"id":    c.ID,
			"name":  c.Name,
			"image": c.Image,
		})
	}
	return resp
}

func mapGroups(groups []cataloguc.CategoryGroup) []map[string]any {
	resp := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, map[string]any{
			"category": map[string]any{
				"id":   g.Category.ID,
				"name": g.Category.Name,
			},
			"products": mapProducts(g.Products),
		})
	}
	return resp
}
