// Package dashboard computes the admin dashboard summary. Every figure is
// derived from a separate gateway query; a failed query degrades that figure
// to its documented default instead of failing the whole summary.
package dashboard

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/domain/models"
	"github.com/mamadbah2/mangsho/internal/repository/mongodb"
)

// Aggregator produces the dashboard summary.
type Aggregator interface {
	Summary(ctx context.Context) models.DashboardSummary
}

// Service implements Aggregator. It is stateless; every call recomputes from
// current ledger contents.
type Service struct {
	repo        mongodb.Repository
	thresholdKg float64
	logger      *zap.Logger
	now         func() time.Time
}

// NewService wires a new dashboard aggregator with the given low-stock
// threshold.
func NewService(repo mongodb.Repository, thresholdKg float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:        repo,
		thresholdKg: thresholdKg,
		logger:      logger,
		now:         time.Now,
	}
}

// Summary assembles the five dashboard figures. It never returns an error;
// unavailable queries fall back to zero sums, or to the "DB Error" sentinel
// for the least-stock item.
func (s *Service) Summary(ctx context.Context) models.DashboardSummary {
	summary := models.DashboardSummary{
		LeastStockItemName: models.LeastStockNone,
	}

	if total, err := s.repo.SumSalesAmount(ctx); err != nil {
		s.logger.Error("failed fetching total sales", zap.Error(err))
	} else {
		summary.TotalSales = total
	}

	if total, err := s.repo.SumInventoryQuantity(ctx); err != nil {
		s.logger.Error("failed fetching inventory total", zap.Error(err))
	} else {
		summary.InventoryKg = total
	}

	s.fillLowStock(ctx, &summary)

	lossStart := s.now().AddDate(0, 0, -models.LossWindowDays).Format(models.DateLayout)
	if total, err := s.repo.SumLossSince(ctx, lossStart); err != nil {
		s.logger.Error("failed fetching recent losses", zap.Error(err))
	} else {
		summary.LossKg = total
	}

	summary.LossPercentage = lossPercentage(summary.InventoryKg, summary.LossKg)
	return summary
}

func (s *Service) fillLowStock(ctx context.Context, summary *models.DashboardSummary) {
	count, err := s.repo.CountLowStock(ctx, s.thresholdKg)
	if err != nil {
		s.logger.Error("failed counting low stock items", zap.Error(err))
		summary.LeastStockItemName = models.LeastStockUnavailable
		return
	}

	summary.LowStockAlertCount = count
	if count == 0 {
		return
	}

	item, err := s.repo.LeastStockItem(ctx, s.thresholdKg)
	if err != nil {
		s.logger.Error("failed fetching least stock item", zap.Error(err))
		summary.LeastStockItemName = models.LeastStockUnavailable
		return
	}

	summary.LeastStockItemName = item.MeatType
	quantity := item.Quantity
	summary.LeastStockItemQuantity = &quantity
}

// lossPercentage relates the 30-day loss volume to the all-time inventory
// total plus that loss, rounded to one decimal place. The mixed windows are
// the deployed business rule, kept as is. Zero denominator yields 0.
func lossPercentage(inventoryKg, lossKg float64) float64 {
	totalBeforeLoss := inventoryKg + lossKg
	if totalBeforeLoss <= 0 {
		return 0
	}
	pct := lossKg / totalBeforeLoss * 100
	return math.Round(pct*10) / 10
}
