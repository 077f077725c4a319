package category

import (
	"context"
	"log/slog"

	domcatalog "example.com/storefront/internal/domain/catalog"
	dom "example.com/storefront/internal/domain/category"
)

// Loader reads categories for the product creation form. It is deliberately
// separate from the catalog fetcher: its failures only affect the selector.
type Loader struct {
	repo   dom.Repository
	logger *slog.Logger
}

func NewLoader(repo dom.Repository, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{repo: repo, logger: logger}
}

func (l *Loader) Load(ctx context.Context, pageSize int) ([]*dom.Category, error) {
	if pageSize <= 0 {
		return nil, domcatalog.ErrInvalidPageSize
	}
	categories, err := l.repo.List(ctx, pageSize)
	if err != nil {
		return nil, &domcatalog.FetchError{Resource: "categories", Err: err}
	}
	if len(categories) > pageSize {
		categories = categories[:pageSize]
	}
	return categories, nil
}

type Option struct {
	ID   int64
	Name string
}

// Selector is the option list of the form's category dropdown. A selector
// built from a failed load is empty and not usable.
type Selector struct {
	Options []Option
	Usable  bool
}

func (s Selector) Contains(id int64) bool {
	for _, o := range s.Options {
		if o.ID == id {
			return true
		}
	}
	return false
}

func (l *Loader) Selector(ctx context.Context, pageSize int) Selector {
	categories, err := l.Load(ctx, pageSize)
	if err != nil {
		l.logger.Warn("could not load categories", slog.Any("error", err))
		return Selector{Options: []Option{}}
	}

	options := make([]Option, 0, len(categories))
	for _, c := range categories {
		options = append(options, Option{ID: c.ID, Name: c.Name})
	}
	return Selector{
		Options: options,
		Usable:  len(options) > 0,
	}
}
