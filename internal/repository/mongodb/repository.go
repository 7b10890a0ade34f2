package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/mangsho/internal/domain/models"
)

// Repository is the persistence gateway over the three ledgers. It owns
// durability and identifier assignment; inserts return the generated id.
type Repository interface {
	InsertInventoryItem(ctx context.Context, item models.InventoryItem) (string, error)
	InsertSaleRecord(ctx context.Context, record models.SaleRecord) (string, error)
	InsertLossRecord(ctx context.Context, record models.LossRecord) (string, error)
	ListSales(ctx context.Context) ([]models.SaleRecord, error)
	SumSalesAmount(ctx context.Context) (float64, error)
	SumInventoryQuantity(ctx context.Context) (float64, error)
	CountLowStock(ctx context.Context, threshold float64) (int64, error)
	LeastStockItem(ctx context.Context, threshold float64) (models.LowStockItem, error)
	SumLossSince(ctx context.Context, startDate string) (float64, error)
}

const (
	inventoryCollection = "inventory"
	salesCollection     = "sales"
	lossCollection      = "loss_records"
)

// MongoDBRepository implements Repository on top of MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository connects to MongoDB and verifies the connection.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

func (r *MongoDBRepository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// InsertInventoryItem appends one inventory batch and returns its id.
func (r *MongoDBRepository) InsertInventoryItem(ctx context.Context, item models.InventoryItem) (string, error) {
	return r.insert(ctx, inventoryCollection, item)
}

// InsertSaleRecord appends one sale and returns its id.
func (r *MongoDBRepository) InsertSaleRecord(ctx context.Context, record models.SaleRecord) (string, error) {
	return r.insert(ctx, salesCollection, record)
}

// InsertLossRecord appends one loss record and returns its id.
func (r *MongoDBRepository) InsertLossRecord(ctx context.Context, record models.LossRecord) (string, error) {
	return r.insert(ctx, lossCollection, record)
}

func (r *MongoDBRepository) insert(ctx context.Context, coll string, doc interface{}) (string, error) {
	res, err := r.collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", coll, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

type saleDoc struct {
	ID                primitive.ObjectID `bson:"_id"`
	models.SaleRecord `bson:",inline"`
}

// ListSales returns every sale ever recorded. Rows come back in storage
// order; the records service owns the newest-first contract.
func (r *MongoDBRepository) ListSales(ctx context.Context) ([]models.SaleRecord, error) {
	cursor, err := r.collection(salesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []saleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}

	sales := make([]models.SaleRecord, 0, len(docs))
	for _, doc := range docs {
		record := doc.SaleRecord
		record.ID = doc.ID.Hex()
		sales = append(sales, record)
	}
	return sales, nil
}

// SumSalesAmount sums total_amount over the whole sales ledger.
func (r *MongoDBRepository) SumSalesAmount(ctx context.Context) (float64, error) {
	return r.sumField(ctx, salesCollection, "$total_amount", bson.M{})
}

// SumInventoryQuantity sums quantity over the whole inventory ledger. This is
// the cumulative received total; nothing subtracts sold quantity.
func (r *MongoDBRepository) SumInventoryQuantity(ctx context.Context) (float64, error) {
	return r.sumField(ctx, inventoryCollection, "$quantity", bson.M{})
}

// SumLossSince sums wastage_amount over loss rows with record_date on or
// after startDate. Dates are stored as YYYY-MM-DD strings, so the $gte
// string comparison is chronological.
func (r *MongoDBRepository) SumLossSince(ctx context.Context, startDate string) (float64, error) {
	return r.sumField(ctx, lossCollection, "$wastage_amount", bson.M{"record_date": bson.M{"$gte": startDate}})
}

func (r *MongoDBRepository) sumField(ctx context.Context, coll, field string, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: field}}},
		}}},
	}

	cursor, err := r.collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate %s: %w", coll, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode %s aggregate: %w", coll, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CountLowStock counts inventory rows with 0 < quantity < threshold. Rows at
// exactly zero are not low stock, they are gone.
func (r *MongoDBRepository) CountLowStock(ctx context.Context, threshold float64) (int64, error) {
	count, err := r.collection(inventoryCollection).CountDocuments(ctx, lowStockFilter(threshold))
	if err != nil {
		return 0, fmt.Errorf("failed to count low stock: %w", err)
	}
	return count, nil
}

// LeastStockItem returns the single lowest-stocked row in the low-stock
// band. On equal quantities the winner is whichever the storage yields first.
func (r *MongoDBRepository) LeastStockItem(ctx context.Context, threshold float64) (models.LowStockItem, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "quantity", Value: 1}})

	var item models.LowStockItem
	err := r.collection(inventoryCollection).FindOne(ctx, lowStockFilter(threshold), opts).Decode(&item)
	if err != nil {
		return models.LowStockItem{}, fmt.Errorf("failed to find least stock item: %w", err)
	}
	return item, nil
}

func lowStockFilter(threshold float64) bson.M {
	return bson.M{"quantity": bson.M{"$gt": 0, "$lt": threshold}}
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
