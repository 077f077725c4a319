package product

import "context"

type Repository interface {
	List(ctx context.Context, page Page) ([]*Product, error)
	Create(ctx context.Context, p *NewProduct) (*Product, error)
}
