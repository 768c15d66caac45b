package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/innoscripta-checkout-register/internal/domain/ledger"
)

const (
	// SaleLedgerCollectionName is the name of the accounting collection in MongoDB
	SaleLedgerCollectionName = "sale_ledger"
)

// SaleLedgerIndexes returns the indexes the sale ledger relies on. The unique sale_id
// index is what turns a second Create for the same sale into ErrDuplicateEntry.
func SaleLedgerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "sale_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("sale_id_unique"),
		},
		{
			Keys:    bson.D{{Key: "sold_at", Value: -1}},
			Options: options.Index().SetName("sold_at_desc"),
		},
	}
}

// SaleLedgerRepository implements the ledger.Repository interface for MongoDB
type SaleLedgerRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewSaleLedgerRepository creates a new MongoDB sale ledger repository
func NewSaleLedgerRepository(logger *slog.Logger, db *mongo.Database) ledger.Repository {
	return &SaleLedgerRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new ledger entry after checking for duplicates.
// Returns ErrDuplicateEntry if the sale was already recorded.
func (r *SaleLedgerRepository) Create(ctx context.Context, entry *ledger.Entry) error {
	collection := r.db.Collection(SaleLedgerCollectionName)

	existingEntry, err := r.GetBySaleID(ctx, entry.SaleID)
	if err != nil && !errors.Is(err, ledger.ErrEntryNotFound{}) {
		r.logger.Error("Failed to check for existing ledger entry",
			"sale_id", entry.SaleID.String(),
			"error", err)
		return fmt.Errorf("failed to check for existing ledger entry: %w", err)
	}

	if existingEntry != nil {
		return ledger.ErrDuplicateEntry{SaleID: entry.SaleID}
	}

	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	_, err = collection.InsertOne(ctx, entry)
	if err != nil {
		r.logger.Error("Failed to create ledger entry",
			"sale_id", entry.SaleID.String(),
			"error", err)
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return nil
}

// GetBySaleID retrieves the ledger entry of a sale.
// Returns ErrEntryNotFound if the sale was never recorded.
func (r *SaleLedgerRepository) GetBySaleID(ctx context.Context, saleID uuid.UUID) (*ledger.Entry, error) {
	collection := r.db.Collection(SaleLedgerCollectionName)

	filter := bson.M{"sale_id": saleID}
	var entry ledger.Entry
	err := collection.FindOne(ctx, filter).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ledger.ErrEntryNotFound{SaleID: saleID}
		}
		r.logger.Error("Failed to get ledger entry",
			"sale_id", saleID.String(),
			"error", err)
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	return &entry, nil
}

// GetByTimeRange retrieves paginated ledger entries for sales made within the window,
// newest first.
func (r *SaleLedgerRepository) GetByTimeRange(ctx context.Context, startTime, endTime time.Time, limit, offset int) ([]*ledger.Entry, error) {
	collection := r.db.Collection(SaleLedgerCollectionName)

	filter := bson.M{
		"sold_at": bson.M{
			"$gte": startTime,
			"$lte": endTime,
		},
	}
	opts := options.Find().
		SetSort(bson.M{"sold_at": -1}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.logger.Error("Failed to get ledger entries by time range",
			"start_time", startTime,
			"end_time", endTime,
			"error", err)
		return nil, fmt.Errorf("failed to get ledger entries by time range: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*ledger.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		r.logger.Error("Failed to decode ledger entries",
			"start_time", startTime,
			"end_time", endTime,
			"error", err)
		return nil, fmt.Errorf("failed to decode ledger entries: %w", err)
	}

	return entries, nil
}
