package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domcategory "example.com/storefront/internal/domain/category"
	domproduct "example.com/storefront/internal/domain/product"
)

type Config struct {
	FeaturedPageSize     int
	HomeCategoryPageSize int
	LatestCount          int
}

func DefaultConfig() Config {
	return Config{
		FeaturedPageSize:     12,
		HomeCategoryPageSize: 4,
		LatestCount:          4,
	}
}

type Service struct {
	products   domproduct.Repository
	categories domcategory.Repository
	cfg        Config
	logger     *slog.Logger
}

func NewService(products domproduct.Repository, categories domcategory.Repository, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		products:   products,
		categories: categories,
		cfg:        cfg,
		logger:     logger,
	}
}

type HomeView struct {
	Featured   []*domproduct.Product
	Categories []*domcategory.Category
	Latest     []*domproduct.Product
}

type ListingView struct {
	Products []*domproduct.Product
	Groups   []CategoryGroup
}

// LoadCatalog reads the first page of products and of categories
// concurrently. It returns only after both reads finished and fails as a
// whole if either of them failed.
func (s *Service) LoadCatalog(ctx context.Context, productPageSize, categoryPageSize int) (*domcatalog.Catalog, error) {
	if productPageSize <= 0 || categoryPageSize <= 0 {
		return nil, domcatalog.ErrInvalidPageSize
	}

	var (
		products   []*domproduct.Product
		categories []*domcategory.Category
	)

	// A plain Group: a failed read must not cancel its sibling.
	var g errgroup.Group
	g.Go(func() error {
		res, err := s.products.List(ctx, domproduct.Page{Offset: 0, Limit: productPageSize})
		if err != nil {
			return &domcatalog.FetchError{Resource: "products", Err: err}
		}
		products = res
		return nil
	})
	g.Go(func() error {
		res, err := s.categories.List(ctx, categoryPageSize)
		if err != nil {
			return &domcatalog.FetchError{Resource: "categories", Err: err}
		}
		categories = res
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("load catalog failed", slog.Any("error", err))
		return nil, err
	}

	return &domcatalog.Catalog{
		Products:   products,
		Categories: categories,
	}, nil
}

func (s *Service) LoadProducts(ctx context.Context, pageSize int) ([]*domproduct.Product, error) {
	if pageSize <= 0 {
		return nil, domcatalog.ErrInvalidPageSize
	}
	products, err := s.products.List(ctx, domproduct.Page{Offset: 0, Limit: pageSize})
	if err != nil {
		err = &domcatalog.FetchError{Resource: "products", Err: err}
		s.logger.Error("load products failed", slog.Any("error", err))
		return nil, err
	}
	return products, nil
}

func (s *Service) Home(ctx context.Context) (*HomeView, error) {
	cat, err := s.LoadCatalog(ctx, s.cfg.FeaturedPageSize, s.cfg.HomeCategoryPageSize)
	if err != nil {
		return nil, err
	}
	return &HomeView{
		Featured:   cat.Products,
		Categories: cat.Categories,
		Latest:     DeriveLatest(cat.Products, s.cfg.LatestCount),
	}, nil
}

func (s *Service) Listing(ctx context.Context) (*ListingView, error) {
	products, err := s.LoadProducts(ctx, s.cfg.FeaturedPageSize)
	if err != nil {
		return nil, err
	}
	return &ListingView{
		Products: products,
		Groups:   GroupByCategory(products),
	}, nil
}
