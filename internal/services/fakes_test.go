// internal/services/fakes_test.go
package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensupply/backend/internal/models"
)

var errStoreDown = errors.New("connection refused")

type fakeCatalogStore struct {
	mu         sync.Mutex
	products   []models.Product
	upserts    int
	failTitles error
	failFind   error
	failUpsert map[string]error
}

func (f *fakeCatalogStore) FindTitles(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTitles != nil {
		return nil, f.failTitles
	}
	titles := make([]string, 0, len(f.products))
	for _, p := range f.products {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

func (f *fakeCatalogStore) Upsert(ctx context.Context, product *models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpsert[product.Title]; err != nil {
		return err
	}
	f.upserts++
	for i, p := range f.products {
		if p.Title == product.Title {
			replacement := *product
			replacement.ID = p.ID
			f.products[i] = replacement
			return nil
		}
	}
	inserted := *product
	inserted.ID = primitive.NewObjectID()
	f.products = append(f.products, inserted)
	return nil
}

func (f *fakeCatalogStore) FindByTitles(ctx context.Context, titles []string) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind != nil {
		return nil, f.failFind
	}
	allowed := map[string]bool{}
	for _, t := range titles {
		allowed[t] = true
	}
	var out []models.Product
	for _, p := range f.products {
		if allowed[p.Title] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) count(title string) int {
	n := 0
	for _, p := range f.products {
		if p.Title == title {
			n++
		}
	}
	return n
}

type fakeOrderStore struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderStore) Insert(ctx context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *order)
	return nil
}

type fakeFeedbackStore struct {
	feedbacks []models.Feedback
	err       error
	lastMin   int
	lastLimit int
}

func (f *fakeFeedbackStore) Insert(ctx context.Context, feedback *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	feedback.ID = primitive.NewObjectID()
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

func (f *fakeFeedbackStore) FindRecent(ctx context.Context, minRating, limit int) ([]models.Feedback, error) {
	f.lastMin, f.lastLimit = minRating, limit
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Feedback
	for _, fb := range f.feedbacks {
		if fb.Rating >= minRating {
			out = append(out, fb)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeInspector struct {
	name        string
	collections []string
	err         error
}

func (f *fakeInspector) Name() string { return f.name }

func (f *fakeInspector) ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error) {
	return f.collections, f.err
}
