// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/zensupply/backend/internal/models"
)

// CatalogStore is the slice of the product collection the catalog needs.
type CatalogStore interface {
	FindTitles(ctx context.Context) ([]string, error)
	// Upsert fully replaces the document with the same title, inserting it when absent.
	Upsert(ctx context.Context, product *models.Product) error
	FindByTitles(ctx context.Context, titles []string) ([]models.Product, error)
}

type CatalogService struct {
	store     CatalogStore
	canonical []models.Product
	allowed   []string
}

// SeedPlan splits the canonical catalog by whether each title is already stored.
type SeedPlan struct {
	Inserts []models.Product
	Updates []models.Product
}

type SeedResult struct {
	Inserted int
	Updated  int
}

// NewCatalogService builds the catalog over store. A nil store means no database is
// configured: seeding does nothing and listings are empty.
func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{
		store:     store,
		canonical: CanonicalProducts(),
		allowed:   AllowedTitles(),
	}
}

// Reconcile computes which canonical products must be inserted and which must
// replace an existing document. It has no side effects.
func Reconcile(canonical []models.Product, existingTitles []string) SeedPlan {
	existing := make(map[string]struct{}, len(existingTitles))
	for _, title := range existingTitles {
		existing[title] = struct{}{}
	}

	var plan SeedPlan
	for _, p := range canonical {
		if _, ok := existing[p.Title]; ok {
			plan.Updates = append(plan.Updates, p)
		} else {
			plan.Inserts = append(plan.Inserts, p)
		}
	}
	return plan
}

// Seed writes the canonical catalog to the store. Every product is attempted even if
// an earlier one failed; the failures are joined into the returned error.
func (s *CatalogService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult
	if s.store == nil {
		return result, nil
	}

	titles, err := s.store.FindTitles(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read product titles: %w", err)
	}

	plan := Reconcile(s.canonical, titles)

	var errs []error
	for i := range plan.Inserts {
		if err := s.store.Upsert(ctx, &plan.Inserts[i]); err != nil {
			errs = append(errs, fmt.Errorf("insert %q: %w", plan.Inserts[i].Title, err))
			continue
		}
		result.Inserted++
	}
	for i := range plan.Updates {
		if err := s.store.Upsert(ctx, &plan.Updates[i]); err != nil {
			errs = append(errs, fmt.Errorf("update %q: %w", plan.Updates[i].Title, err))
			continue
		}
		result.Updated++
	}

	return result, errors.Join(errs...)
}

// ListProducts seeds the catalog best-effort and returns the allow-listed products in
// catalog order.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.store == nil {
		return []models.Product{}, nil
	}

	result, err := s.Seed(ctx)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"inserted": result.Inserted,
			"updated":  result.Updated,
		}).Warn("Catalog seeding failed")
	} else if result.Inserted > 0 {
		logrus.WithField("inserted", result.Inserted).Info("Seeded catalog products")
	}

	stored, err := s.store.FindByTitles(ctx, s.allowed)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]models.Product, 0, len(stored))
	for _, p := range stored {
		if slices.Contains(s.allowed, p.Title) {
			products = append(products, p)
		}
	}
	slices.SortStableFunc(products, func(a, b models.Product) int {
		return slices.Index(s.allowed, a.Title) - slices.Index(s.allowed, b.Title)
	})

	return products, nil
}
