package persistence

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestMongoDB_Database(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns configured database", func(mt *mtest.T) {
		mdb := &MongoDB{client: mt.Client, database: mt.DB}
		assert.Equal(mt, mt.DB, mdb.Database())
	})
}

func TestMongoDB_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		mdb := &MongoDB{logger: slog.Default(), client: mt.Client, database: mt.DB}

		err := mdb.EnsureIndexes(context.Background(), "sale_ledger", mongo.IndexModel{
			Keys:    bson.D{{Key: "sale_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		assert.NoError(mt, err)
	})

	mt.Run("server error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    85,
			Message: "index options conflict",
			Name:    "IndexOptionsConflict",
		}))
		mdb := &MongoDB{logger: slog.Default(), client: mt.Client, database: mt.DB}

		err := mdb.EnsureIndexes(context.Background(), "sale_ledger", mongo.IndexModel{
			Keys: bson.D{{Key: "sale_id", Value: 1}},
		})
		assert.ErrorContains(mt, err, "sale_ledger")
	})

	mt.Run("no indexes", func(mt *mtest.T) {
		mdb := &MongoDB{logger: slog.Default(), client: mt.Client, database: mt.DB}
		assert.NoError(mt, mdb.EnsureIndexes(context.Background(), "sale_ledger"))
	})
}
