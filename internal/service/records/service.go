package records

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/domain/models"
	"github.com/mamadbah2/mangsho/internal/domain/validation"
	"github.com/mamadbah2/mangsho/internal/repository/mongodb"
)

// RecordService describes the ledger operations the HTTP layer can perform.
type RecordService interface {
	CreateInventoryItem(ctx context.Context, input models.InventoryInput) (string, error)
	CreateSaleRecord(ctx context.Context, input models.SaleInput) (CreatedSale, error)
	CreateLossRecord(ctx context.Context, input models.LossInput) (string, error)
	ListSales(ctx context.Context) ([]models.SaleRecord, error)
}

// CreatedSale is the result of a successful sale insert. ProductID is either
// the caller-supplied id or the derived one.
type CreatedSale struct {
	ID        string
	ProductID string
}

// Service implements RecordService on top of the persistence gateway.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewService wires a new records service instance.
func NewService(repo mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateInventoryItem validates and stores one inventory batch.
func (s *Service) CreateInventoryItem(ctx context.Context, input models.InventoryInput) (string, error) {
	item, msgs := validation.Inventory(input)
	if len(msgs) > 0 {
		return "", &validation.Error{Messages: msgs}
	}

	id, err := s.repo.InsertInventoryItem(ctx, item)
	if err != nil {
		return "", fmt.Errorf("insert inventory item: %w", err)
	}

	s.logger.Info("inventory item recorded",
		zap.String("id", id),
		zap.String("meat_type", item.MeatType),
		zap.Float64("quantity_kg", item.Quantity))
	return id, nil
}

// CreateSaleRecord validates and stores one sale. A missing product id is
// derived from the product name plus the current time; the derivation is
// best-effort unique, not collision-proof.
func (s *Service) CreateSaleRecord(ctx context.Context, input models.SaleInput) (CreatedSale, error) {
	record, msgs := validation.Sale(input)
	if len(msgs) > 0 {
		return CreatedSale{}, &validation.Error{Messages: msgs}
	}

	if record.ProductID == "" {
		record.ProductID = DeriveProductID(record.ProductName, time.Now())
	}

	id, err := s.repo.InsertSaleRecord(ctx, record)
	if err != nil {
		return CreatedSale{}, fmt.Errorf("insert sale record: %w", err)
	}

	s.logger.Info("sale recorded",
		zap.String("id", id),
		zap.String("product_id", record.ProductID),
		zap.Float64("total_amount", record.TotalAmount))
	return CreatedSale{ID: id, ProductID: record.ProductID}, nil
}

// CreateLossRecord validates and stores one wastage record.
func (s *Service) CreateLossRecord(ctx context.Context, input models.LossInput) (string, error) {
	record, msgs := validation.Loss(input)
	if len(msgs) > 0 {
		return "", &validation.Error{Messages: msgs}
	}

	id, err := s.repo.InsertLossRecord(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert loss record: %w", err)
	}

	s.logger.Info("loss recorded",
		zap.String("id", id),
		zap.String("stage", record.Stage),
		zap.Float64("wastage_kg", record.WastageAmount))
	return id, nil
}

// ListSales returns every sale, newest first: sale date descending, then id
// descending. The ordering is applied here so the contract holds regardless
// of the gateway's storage order.
func (s *Service) ListSales(ctx context.Context) ([]models.SaleRecord, error) {
	sales, err := s.repo.ListSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	sort.SliceStable(sales, func(i, j int) bool {
		if sales[i].SaleDate != sales[j].SaleDate {
			return sales[i].SaleDate > sales[j].SaleDate
		}
		return sales[i].ID > sales[j].ID
	})
	return sales, nil
}

// DeriveProductID builds a product id from the product name: "SALE-", the
// first five characters of the space-stripped uppercased name, and a
// timestamp token.
func DeriveProductID(productName string, now time.Time) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(productName, " ", ""))
	if len(cleaned) > 5 {
		cleaned = cleaned[:5]
	}
	return fmt.Sprintf("SALE-%s-%d", cleaned, now.UnixNano())
}
