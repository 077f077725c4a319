package submission

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	domproduct "example.com/storefront/internal/domain/product"
)

// Draft is the raw text of the creation form. Field order is the order in
// which rules are checked.
type Draft struct {
	Title       string `json:"title" validate:"required,min=4"`
	Price       string `json:"price" validate:"required,price_min=1,price_max=1000000000"`
	CategoryID  string `json:"categoryId" validate:"required,positive_id"`
	Image       string `json:"image" validate:"required,http_url"`
	Description string `json:"description" validate:"required"`
}

func (d Draft) normalized() Draft {
	return Draft{
		Title:       strings.TrimSpace(d.Title),
		Price:       strings.TrimSpace(d.Price),
		CategoryID:  strings.TrimSpace(d.CategoryID),
		Image:       strings.TrimSpace(d.Image),
		Description: strings.TrimSpace(d.Description),
	}
}

var errPriceOutOfRange = errors.New("price out of range")

// toNewProduct coerces a validated draft into the create payload.
func (d Draft) toNewProduct() (*domproduct.NewProduct, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return nil, errors.Wrap(err, "price")
	}
	amount := price.InexactFloat64()
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return nil, errPriceOutOfRange
	}
	categoryID, err := strconv.ParseInt(d.CategoryID, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "categoryId")
	}
	return &domproduct.NewProduct{
		Title:       d.Title,
		Price:       amount,
		Description: d.Description,
		CategoryID:  categoryID,
		Images:      []string{d.Image},
	}, nil
}

// NewValidator returns a validator with the draft's custom rules registered.
// The result is safe for concurrent use and meant to be shared.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("price_min", validatePriceMin)
	_ = v.RegisterValidation("price_max", validatePriceMax)
	_ = v.RegisterValidation("positive_id", validatePositiveID)
	return v
}

func validatePriceMin(fl validator.FieldLevel) bool {
	minimum, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	price, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return price.GreaterThanOrEqual(minimum)
}

func validatePriceMax(fl validator.FieldLevel) bool {
	maximum, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	price, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return price.LessThanOrEqual(maximum)
}

func validatePositiveID(fl validator.FieldLevel) bool {
	id, err := strconv.ParseInt(fl.Field().String(), 10, 64)
	return err == nil && id > 0
}

// toValidationError keeps only the first failing rule.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domproduct.ValidationError{Field: "draft", Message: "invalid product"}
	}
	fe := verrs[0]
	return &domproduct.ValidationError{
		Field:   fe.Field(),
		Message: ruleMessage(fe),
	}
}

func ruleMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	switch fe.Field() {
	case "title":
		return "must be at least " + fe.Param() + " characters"
	case "price":
		if _, err := decimal.NewFromString(fe.Value().(string)); err != nil {
			return "must be a number"
		}
		if fe.Tag() == "price_max" {
			return "must be at most " + fe.Param()
		}
		return "must be at least " + fe.Param()
	case "categoryId":
		return "must be a valid category"
	case "image":
		return "must be a valid URL"
	}
	return "is invalid"
}
