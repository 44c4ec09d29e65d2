// internal/database/product_repository.go
package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zensupply/backend/internal/models"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(models.CollectionProducts)}
}

func (r *ProductRepository) FindTitles(ctx context.Context) ([]string, error) {
	type titleOnly struct {
		Title string `bson:"title"`
	}

	opts := options.Find().SetProjection(bson.M{"title": 1, "_id": 0})
	docs, err := findAll[titleOnly](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find product titles: %w", err)
	}

	titles := make([]string, 0, len(docs))
	for _, d := range docs {
		titles = append(titles, d.Title)
	}
	return titles, nil
}

// Upsert replaces the whole document matching product.Title, keeping its _id.
func (r *ProductRepository) Upsert(ctx context.Context, product *models.Product) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"title": product.Title}, product, opts); err != nil {
		return fmt.Errorf("upsert product %q: %w", product.Title, err)
	}
	return nil
}

func (r *ProductRepository) FindByTitles(ctx context.Context, titles []string) ([]models.Product, error) {
	products, err := findAll[models.Product](ctx, r.coll, bson.M{"title": bson.M{"$in": titles}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	return products, nil
}
