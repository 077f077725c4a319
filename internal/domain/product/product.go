package product

import "time"

const PlaceholderImage = "https://placehold.co/600x400"

type CategoryRef struct {
	ID   int64
	Name string
}

type Product struct {
	ID          int64
	Title       string
	Price       float64
	Description string
	Images      []string
	Category    CategoryRef
	CreatedAt   time.Time
}

// PrimaryImage returns the first image, falling back to a placeholder when the
// product has none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 || p.Images[0] == "" {
		return PlaceholderImage
	}
	return p.Images[0]
}

// NewProduct is the create payload sent to the catalog service.
type NewProduct struct {
	Title       string
	Price       float64
	Description string
	CategoryID  int64
	Images      []string
}

type Page struct {
	Offset int
	Limit  int
}
