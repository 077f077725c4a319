// Package submission validates product drafts and creates them on the catalog
// service, one request at a time per form.
package submission

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domcatalog "example.com/storefront/internal/domain/catalog"
	domproduct "example.com/storefront/internal/domain/product"
)

const (
	MsgSubmitted        = "successfully saved a new product"
	MsgSubmissionFailed = "saved a new product failed"
	MsgCheckYourData    = "Check your data"
)

type Pipeline struct {
	repo     domproduct.Repository
	validate *validator.Validate
	logger   *slog.Logger
	inFlight atomic.Bool
}

func NewPipeline(repo domproduct.Repository, validate *validator.Validate, logger *slog.Logger) *Pipeline {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		repo:     repo,
		validate: validate,
		logger:   logger,
	}
}

// Submitting reports whether a create request is outstanding.
func (p *Pipeline) Submitting() bool {
	return p.inFlight.Load()
}

// Submit validates the draft and, if it passes, sends exactly one create
// request. A call made while another is in flight fails with
// domproduct.ErrSubmissionInFlight without touching the network.
func (p *Pipeline) Submit(ctx context.Context, d Draft) (*domproduct.Product, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, domproduct.ErrSubmissionInFlight
	}
	defer p.inFlight.Store(false)

	d = d.normalized()
	if err := p.validate.Struct(d); err != nil {
		return nil, toValidationError(err)
	}

	payload, err := d.toNewProduct()
	if errors.Is(err, errPriceOutOfRange) {
		return nil, &domproduct.ValidationError{Field: "price", Message: "must be a finite number"}
	}
	if err != nil {
		return nil, &domproduct.ValidationError{Field: "draft", Message: err.Error()}
	}

	log := p.logger.With(slog.String("submission_id", uuid.NewString()))
	log.Info("submitting product",
		slog.String("title", payload.Title),
		slog.Int64("category_id", payload.CategoryID),
	)

	created, err := p.repo.Create(ctx, payload)
	if err != nil {
		return nil, classify(log, err)
	}

	log.Info("product created", slog.Int64("product_id", created.ID))
	return created, nil
}

func classify(log *slog.Logger, err error) error {
	var se *domcatalog.StatusError
	switch {
	case errors.As(err, &se):
		msg := se.Message
		if msg == "" {
			msg = MsgCheckYourData
		}
		log.Warn("catalog service rejected product",
			slog.Int("status", se.Status),
			slog.String("message", se.Message),
		)
		return &domproduct.SubmissionError{Message: msg, Status: se.Status, Err: err}
	case errors.Is(err, domproduct.ErrMalformedProduct):
		log.Error("unreadable create response", slog.Any("error", err))
		return &domproduct.SubmissionError{Message: MsgSubmissionFailed, Err: err}
	default:
		log.Error("create request failed", slog.Any("error", err))
		return &domproduct.SubmissionError{Message: MsgSubmissionFailed, Err: err}
	}
}
