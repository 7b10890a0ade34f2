package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mamadbah2/mangsho/internal/domain/models"
	"github.com/mamadbah2/mangsho/pkg/clients/webhook"
)

type fakeAggregator struct {
	summary models.DashboardSummary
}

func (f *fakeAggregator) Summary(context.Context) models.DashboardSummary {
	return f.summary
}

type fakeNotifier struct {
	alerts []webhook.Alert
	err    error
}

func (f *fakeNotifier) Notify(_ context.Context, alert webhook.Alert) error {
	if f.err != nil {
		return f.err
	}
	f.alerts = append(f.alerts, alert)
	return nil
}

type fakeExporter struct {
	ranges []string
	rows   [][]interface{}
	err    error
}

func (f *fakeExporter) AppendRow(_ context.Context, sheetRange string, values []interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.ranges = append(f.ranges, sheetRange)
	f.rows = append(f.rows, values)
	return nil
}

func qty(v float64) *float64 { return &v }

var testNow = time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)

func lowStockSummary() models.DashboardSummary {
	return models.DashboardSummary{
		TotalSales:             15000,
		InventoryKg:            900,
		LowStockAlertCount:     2,
		LeastStockItemName:     "Lamb",
		LeastStockItemQuantity: qty(10),
		LossKg:                 100,
		LossPercentage:         10.0,
	}
}

func TestSendDailySummaryDeliversToBothDestinations(t *testing.T) {
	notifier := &fakeNotifier{}
	exporter := &fakeExporter{}
	svc := NewService(&fakeAggregator{summary: lowStockSummary()}, notifier, exporter, "DailySummary!A:H", nil)

	if err := svc.SendDailySummary(context.Background(), testNow); err != nil {
		t.Fatalf("SendDailySummary: %v", err)
	}

	if len(notifier.alerts) != 1 {
		t.Fatalf("want 1 alert, got %d", len(notifier.alerts))
	}
	msg := notifier.alerts[0].Message
	for _, want := range []string{"2024-06-15", "15000.00", "900.00 kg", "100.00 kg", "10.0%", "LOW STOCK", "Lamb"} {
		if !strings.Contains(msg, want) {
			t.Errorf("alert message missing %q:\n%s", want, msg)
		}
	}

	if len(exporter.rows) != 1 || len(exporter.rows[0]) != 8 {
		t.Fatalf("want one 8-column row, got %v", exporter.rows)
	}
	if exporter.ranges[0] != "DailySummary!A:H" {
		t.Errorf("range = %q", exporter.ranges[0])
	}
}

func TestSendDailySummarySkipsNilDestinations(t *testing.T) {
	svc := NewService(&fakeAggregator{summary: lowStockSummary()}, nil, nil, "", nil)
	if err := svc.SendDailySummary(context.Background(), testNow); err != nil {
		t.Errorf("nil destinations must not fail: %v", err)
	}
}

func TestSendDailySummaryOneFailureDoesNotStopOther(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("webhook down")}
	exporter := &fakeExporter{}
	svc := NewService(&fakeAggregator{}, notifier, exporter, "DailySummary!A:H", nil)

	err := svc.SendDailySummary(context.Background(), testNow)
	if err == nil || !strings.Contains(err.Error(), "webhook down") {
		t.Errorf("want aggregated error, got %v", err)
	}
	if len(exporter.rows) != 1 {
		t.Errorf("export must still run, rows = %v", exporter.rows)
	}
}

func TestFormatSummaryWithoutLowStock(t *testing.T) {
	summary := models.DashboardSummary{LeastStockItemName: models.LeastStockNone}
	report := FormatSummary("2024-06-15", summary)
	if !strings.Contains(report, "Low stock alerts: none") {
		t.Errorf("report missing no-alert line:\n%s", report)
	}
	if strings.Contains(report, "LOW STOCK:") {
		t.Errorf("unexpected alert line:\n%s", report)
	}
}
