// internal/tests/fakes_test.go
package tests

import (
	"context"
	"errors"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensupply/backend/internal/models"
	"github.com/zensupply/backend/pkg/idempotency"
)

var errStoreDown = errors.New("server selection error: context deadline exceeded")

// memoryStore backs every collection with slices so the HTTP tests run without MongoDB.
type memoryStore struct {
	mu        sync.Mutex
	products  []models.Product
	orders    []models.Order
	feedbacks []models.Feedback
	findErr   error
}

func (m *memoryStore) FindTitles(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	titles := make([]string, 0, len(m.products))
	for _, p := range m.products {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

func (m *memoryStore) Upsert(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.products {
		if p.Title == product.Title {
			replacement := *product
			replacement.ID = p.ID
			m.products[i] = replacement
			return nil
		}
	}
	inserted := *product
	inserted.ID = primitive.NewObjectID()
	m.products = append(m.products, inserted)
	return nil
}

func (m *memoryStore) FindByTitles(ctx context.Context, titles []string) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	wanted := map[string]bool{}
	for _, t := range titles {
		wanted[t] = true
	}
	var out []models.Product
	for _, p := range m.products {
		if wanted[p.Title] {
			out = append(out, p)
		}
	}
	return out, nil
}

type orderCollection struct{ *memoryStore }

func (o orderCollection) Insert(ctx context.Context, order *models.Order) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	order.ID = primitive.NewObjectID()
	o.orders = append(o.orders, *order)
	return nil
}

// stallingOrders holds every insert until the request deadline. With persistLate set
// the order is stored anyway, as a write acknowledged after the client gave up.
type stallingOrders struct {
	orderCollection
	persistLate bool
}

func (s stallingOrders) Insert(ctx context.Context, order *models.Order) error {
	<-ctx.Done()
	if s.persistLate {
		return s.orderCollection.Insert(context.Background(), order)
	}
	return ctx.Err()
}

type feedbackCollection struct{ *memoryStore }

func (f feedbackCollection) Insert(ctx context.Context, feedback *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	feedback.ID = primitive.NewObjectID()
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

func (f feedbackCollection) FindRecent(ctx context.Context, minRating, limit int) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
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

type memoryInspector struct{}

func (memoryInspector) Name() string { return "zensupply_test" }

func (memoryInspector) ListCollectionNames(ctx context.Context, filter interface{}, opts ...*options.ListCollectionsOptions) ([]string, error) {
	return []string{"product", "order", "feedback"}, nil
}

type memoryIdempotency struct {
	mu   sync.Mutex
	keys map[string]string
}

func newMemoryIdempotency() *memoryIdempotency {
	return &memoryIdempotency{keys: map[string]string{}}
}

// Like Redis, every call fails once ctx is done.
func (m *memoryIdempotency) Claim(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.keys[key]; ok {
		return existing, false, nil
	}
	m.keys[key] = idempotency.Pending
	return "", true, nil
}

func (m *memoryIdempotency) Complete(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[key] = value
	return nil
}

func (m *memoryIdempotency) Release(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}
