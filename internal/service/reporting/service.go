package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/mangsho/internal/domain/models"
	"github.com/mamadbah2/mangsho/internal/repository/sheets"
	"github.com/mamadbah2/mangsho/internal/service/dashboard"
	"github.com/mamadbah2/mangsho/pkg/clients/webhook"
)

// Service turns the dashboard summary into an operator report, pushes it to
// the alert webhook and appends an export row to the report sheet. Both
// destinations are optional; a nil notifier or exporter is skipped.
type Service struct {
	aggregator  dashboard.Aggregator
	notifier    webhook.Notifier
	exporter    sheets.Repository
	exportRange string
	logger      *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(aggregator dashboard.Aggregator, notifier webhook.Notifier, exporter sheets.Repository, exportRange string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		aggregator:  aggregator,
		notifier:    notifier,
		exporter:    exporter,
		exportRange: exportRange,
		logger:      logger,
	}
}

// SendDailySummary computes the current summary and delivers it. Delivery
// failures are reported but one destination failing does not stop the other.
func (s *Service) SendDailySummary(ctx context.Context, now time.Time) error {
	summary := s.aggregator.Summary(ctx)
	date := now.Format(models.DateLayout)
	report := FormatSummary(date, summary)

	var failures []string

	if s.notifier != nil {
		alert := webhook.Alert{Title: "Daily back-office summary", Message: report}
		if err := s.notifier.Notify(ctx, alert); err != nil {
			s.logger.Error("failed pushing summary alert", zap.Error(err))
			failures = append(failures, fmt.Sprintf("alert: %v", err))
		}
	}

	if s.exporter != nil {
		row := summaryRow(date, summary)
		if err := s.exporter.AppendRow(ctx, s.exportRange, row); err != nil {
			s.logger.Error("failed exporting summary row", zap.Error(err))
			failures = append(failures, fmt.Sprintf("export: %v", err))
		}
	}

	if len(failures) > 0 {
		return fmt.Errorf("daily summary delivery: %s", strings.Join(failures, "; "))
	}

	s.logger.Info("daily summary delivered", zap.String("date", date))
	return nil
}

// FormatSummary renders the dashboard summary as a plain-text report.
func FormatSummary(date string, summary models.DashboardSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mangsho summary for %s\n", date)
	fmt.Fprintf(&b, "Total sales: %.2f\n", summary.TotalSales)
	fmt.Fprintf(&b, "Inventory on record: %.2f kg\n", summary.InventoryKg)
	fmt.Fprintf(&b, "Losses (last %d days): %.2f kg (%.1f%%)\n", models.LossWindowDays, summary.LossKg, summary.LossPercentage)

	if summary.LowStockAlertCount > 0 && summary.LeastStockItemQuantity != nil {
		fmt.Fprintf(&b, "LOW STOCK: %d item(s) below threshold, lowest is %s at %.2f kg\n",
			summary.LowStockAlertCount, summary.LeastStockItemName, *summary.LeastStockItemQuantity)
	} else {
		fmt.Fprintf(&b, "Low stock alerts: none\n")
	}

	return b.String()
}

func summaryRow(date string, summary models.DashboardSummary) []interface{} {
	var leastQty interface{}
	if summary.LeastStockItemQuantity != nil {
		leastQty = *summary.LeastStockItemQuantity
	}
	return []interface{}{
		date,
		summary.TotalSales,
		summary.InventoryKg,
		summary.LowStockAlertCount,
		summary.LeastStockItemName,
		leastQty,
		summary.LossKg,
		summary.LossPercentage,
	}
}
