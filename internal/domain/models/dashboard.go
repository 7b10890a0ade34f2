package models

// Sentinel values reported for the least-stock item name.
const (
	// LeastStockNone is reported when no inventory row is in the low-stock
	// band (0 < quantity < threshold).
	LeastStockNone = "N/A"
	// LeastStockUnavailable is reported when a low-stock query failed.
	LeastStockUnavailable = "DB Error"
)

// LossWindowDays is the trailing window, in days, over which recent losses
// are summed for the dashboard.
const LossWindowDays = 30

// DashboardSummary is the single value produced by the dashboard aggregator.
// Each figure is computed independently; a failed query yields that figure's
// documented default instead of failing the whole summary.
type DashboardSummary struct {
	TotalSales             float64  `json:"totalSales"`
	InventoryKg            float64  `json:"inventoryKg"`
	LowStockAlertCount     int64    `json:"lowStockAlertCount"`
	LeastStockItemName     string   `json:"leastStockItemName"`
	LeastStockItemQuantity *float64 `json:"leastStockItemQuantity"`
	LossKg                 float64  `json:"lossKg"`
	LossPercentage         float64  `json:"lossPercentage"`
}

// LowStockItem is the single lowest-stocked inventory row below the
// threshold. Ties are broken by storage order.
type LowStockItem struct {
	MeatType string  `bson:"meat_type"`
	Quantity float64 `bson:"quantity"`
}
