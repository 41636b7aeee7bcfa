package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/notify"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

// CatalogService provides business logic for the product catalog.
type CatalogService interface {
	// List returns all products in insertion order.
	List(ctx context.Context) []domain.Product

	// Search returns the products whose name or description contains the
	// term, case-insensitively. An empty term returns everything.
	Search(ctx context.Context, term string) []domain.Product

	// Get returns the product with the given id.
	Get(ctx context.Context, id string) (domain.Product, error)

	// Add validates and inserts a new product, assigning its id.
	Add(ctx context.Context, p domain.Product) (domain.Product, error)

	// Update replaces the mutable fields of an existing product.
	Update(ctx context.Context, id string, p domain.Product) (domain.Product, error)

	// Delete removes a product. No-op error if absent.
	Delete(ctx context.Context, id string) error
}

type catalogService struct {
	mu       sync.Mutex
	products []domain.Product

	maxStock int
	persist  *persister
	notifier *notify.Center
	logger   *slog.Logger
}

// NewCatalogService loads the catalog from the store (seed data when absent
// or malformed) and returns a CatalogService.
func NewCatalogService(ctx context.Context, store storage.Store, maxStock int, notifier *notify.Center, logger *slog.Logger) CatalogService {
	if logger == nil {
		logger = slog.Default()
	}

	products := loadList(ctx, store, storage.KeyProducts, domain.SeedProducts(), logger)

	return &catalogService{
		products: products,
		maxStock: maxStock,
		persist:  newPersister(store, logger),
		notifier: notifier,
		logger:   logger,
	}
}

func (s *catalogService) List(ctx context.Context) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *catalogService) Search(ctx context.Context, term string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if term == "" {
		return s.snapshot()
	}

	needle := strings.ToLower(term)
	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (s *catalogService) Get(ctx context.Context, id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

func (s *catalogService) Add(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := s.validate(p); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	p.ID = "p" + uuid.New().String()
	s.products = append(s.products, p)
	s.persist.save(storage.KeyProducts, s.products)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Product added.")
	}
	return p, nil
}

func (s *catalogService) Update(ctx context.Context, id string, p domain.Product) (domain.Product, error) {
	if err := s.validate(p); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	idx := -1
	for i, existing := range s.products {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return domain.Product{}, ErrProductNotFound
	}
	p.ID = id
	s.products[idx] = p
	s.persist.save(storage.KeyProducts, s.products)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Product updated.")
	}
	return p, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, existing := range s.products {
		if existing.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrProductNotFound
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.persist.save(storage.KeyProducts, s.products)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Product deleted.")
	}
	return nil
}

// validate applies domain invariants plus the configured stock cap.
func (s *catalogService) validate(p domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if s.maxStock > 0 && p.Stock > s.maxStock {
		return domain.Invalid("product.validate", fmt.Sprintf("stock cannot exceed %d", s.maxStock))
	}
	return nil
}

// snapshot copies the product list; callers must not see internal slices.
func (s *catalogService) snapshot() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
