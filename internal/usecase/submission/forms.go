package submission

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domproduct "example.com/storefront/internal/domain/product"
)

type formEntry struct {
	pipeline *Pipeline
	touched  time.Time
}

// Forms tracks open creation forms. Each form owns its own Pipeline, so the
// single-submission guarantee holds per form rather than per process.
// At most maxOpen forms are held; opening one more evicts the least recently
// used idle form.
type Forms struct {
	mu       sync.Mutex
	forms    map[string]*formEntry
	ttl      time.Duration
	maxOpen  int
	now      func() time.Time
	repo     domproduct.Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewForms builds a registry. A non-positive maxOpen disables the cap.
func NewForms(repo domproduct.Repository, ttl time.Duration, maxOpen int, logger *slog.Logger) *Forms {
	if logger == nil {
		logger = slog.Default()
	}
	return &Forms{
		forms:    make(map[string]*formEntry),
		ttl:      ttl,
		maxOpen:  maxOpen,
		now:      time.Now,
		repo:     repo,
		validate: NewValidator(),
		logger:   logger,
	}
}

func (f *Forms) Open() (string, *Pipeline) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pruneLocked()
	f.evictLocked()

	id := uuid.NewString()
	p := NewPipeline(f.repo, f.validate, f.logger.With(slog.String("form_id", id)))
	f.forms[id] = &formEntry{pipeline: p, touched: f.now()}
	return id, p
}

func (f *Forms) Get(id string) (*Pipeline, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.forms[id]
	if !ok {
		return nil, false
	}
	entry.touched = f.now()
	return entry.pipeline, true
}

// Close forgets a form, typically after it was submitted successfully.
func (f *Forms) Close(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.forms, id)
}

func (f *Forms) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.forms)
}

func (f *Forms) pruneLocked() {
	if f.ttl <= 0 {
		return
	}
	cutoff := f.now().Add(-f.ttl)
	for id, entry := range f.forms {
		if entry.touched.Before(cutoff) && !entry.pipeline.Submitting() {
			delete(f.forms, id)
		}
	}
}

// evictLocked makes room for one more form. Forms with a submission in flight
// are never evicted, so the cap can be exceeded while all of them are busy.
func (f *Forms) evictLocked() {
	if f.maxOpen <= 0 {
		return
	}
	for len(f.forms) >= f.maxOpen {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, entry := range f.forms {
			if entry.pipeline.Submitting() {
				continue
			}
			if oldestID == "" || entry.touched.Before(oldest) {
				oldestID, oldest = id, entry.touched
			}
		}
		if oldestID == "" {
			return
		}
		delete(f.forms, oldestID)
		f.logger.Debug("evicted idle form", slog.String("form_id", oldestID))
	}
}
