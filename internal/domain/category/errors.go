package category

import "github.com/go-faster/errors"

var ErrMalformedCategory = errors.New("malformed category")
