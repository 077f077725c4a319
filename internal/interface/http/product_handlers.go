package http

import (
	"log/slog"
	"net/http"

	submissionuc "example.com/storefront/internal/usecase/submission"
)

type createProductRequest struct {
	FormID      string `json:"form_id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	CategoryID  string `json:"category_id"`
	Image       string `json:"image"`
}

func (a *API) handleNewProductForm(w http.ResponseWriter, r *http.Request) {
	formID, _ := a.forms.Open()
	sel := a.categoryLoader.Selector(r.Context(), a.formCategoryPageSize)

	options := make([]map[string]any, 0, len(sel.Options))
	for _, o := range sel.Options {
		options = append(options, map[string]any{"id": o.ID, "name": o.Name})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"form_id":    formID,
		"categories": options,
		"usable":     sel.Usable,
	})
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := a.decode(r, &req); err != nil {
		a.logger.Warn("invalid create request", slog.Any("error", err))
		respondError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	pipeline, ok := a.forms.Get(req.FormID)
	if !ok {
		handleDomainError(w, errFormNotFound)
		return
	}

	product, err := pipeline.Submit(r.Context(), submissionuc.Draft{
		Title:       req.Title,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	a.forms.Close(req.FormID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":   "success",
		"message":  submissionuc.MsgSubmitted,
		"redirect": "/products",
		"data":     mapProduct(product),
	})
}
