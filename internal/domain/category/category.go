package category

type Category struct {
	ID    int64
	Name  string
	Image string
}
