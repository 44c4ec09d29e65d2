// internal/database/repository_test.go
package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/zensupply/backend/internal/models"
)

func TestProductRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find titles", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + models.CollectionProducts

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "title", Value: "Skeleton Spawner"}},
			bson.D{{Key: "title", Value: "Money • 5M"}},
		))

		titles, err := repo.FindTitles(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"Skeleton Spawner", "Money • 5M"}, titles)
	})

	mt.Run("find by titles", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		ns := mt.DB.Name() + "." + models.CollectionProducts
		id := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "title", Value: "Mob Coin Bundle"},
				{Key: "price", Value: 7.99},
				{Key: "in_stock", Value: true},
				{Key: "variants", Value: bson.A{
					bson.D{{Key: "id", Value: "coins-5k"}, {Key: "label", Value: "5,000 Mob Coins"}, {Key: "bundle_qty", Value: 5}},
				}},
			},
		))

		products, err := repo.FindByTitles(context.Background(), []string{"Mob Coin Bundle"})
		require.NoError(mt, err)
		require.Len(mt, products, 1)
		assert.Equal(mt, id, products[0].ID)
		assert.Equal(mt, 7.99, products[0].Price)
		require.Len(mt, products[0].Variants, 1)
		require.NotNil(mt, products[0].Variants[0].BundleQty)
		assert.Equal(mt, 5, *products[0].Variants[0].BundleQty)
		assert.Nil(mt, products[0].Variants[0].UnitPrice)
	})

	mt.Run("upsert", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.Upsert(context.Background(), &models.Product{Title: "Money • 10M", Price: 17.99})
		assert.NoError(mt, err)
	})

	mt.Run("upsert error", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.Upsert(context.Background(), &models.Product{Title: "Money • 10M"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "Money • 10M")
	})
}

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns id", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := &models.Order{
			MinecraftUsername: "Notch",
			Items:             []models.OrderItem{{ProductID: "p1", Name: "Elytra", Price: 12, Quantity: 2}},
			TotalAmount:       24,
			Status:            models.OrderStatusPending,
			CreatedAt:         time.Now().UTC(),
		}
		require.NoError(mt, repo.Insert(context.Background(), order))
		assert.False(mt, order.ID.IsZero())
	})

	mt.Run("insert error", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized on zensupply",
		}))

		err := repo.Insert(context.Background(), &models.Order{MinecraftUsername: "Notch"})
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "not authorized")
	})
}

func TestFeedbackRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		repo := NewFeedbackRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		feedback := &models.Feedback{Rating: 5, CreatedAt: time.Now().UTC()}
		require.NoError(mt, repo.Insert(context.Background(), feedback))
		assert.False(mt, feedback.ID.IsZero())
	})

	mt.Run("find recent", func(mt *mtest.T) {
		repo := NewFeedbackRepository(mt.DB)
		ns := mt.DB.Name() + "." + models.CollectionFeedbacks
		newer := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
		older := newer.Add(-time.Hour)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "rating", Value: 5}, {Key: "created_at", Value: newer}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "rating", Value: 5}, {Key: "comment", Value: "gg"}, {Key: "created_at", Value: older}},
		))

		feedbacks, err := repo.FindRecent(context.Background(), 5, 2)
		require.NoError(mt, err)
		require.Len(mt, feedbacks, 2)
		assert.True(mt, newer.Equal(feedbacks[0].CreatedAt))
		require.NotNil(mt, feedbacks[1].Comment)
		assert.Equal(mt, "gg", *feedbacks[1].Comment)
	})
}
