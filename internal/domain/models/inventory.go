package models

// DateLayout is the fixed calendar-date form used by every record kind.
// Dates are kept as validated strings in this form; lexicographic order on
// it matches chronological order.
const DateLayout = "2006-01-02"

// InventoryItem captures one batch of processed meat added to stock.
// Rows are append-only; nothing updates or deletes them.
type InventoryItem struct {
	ID              string  `bson:"-" json:"id,omitempty"`
	MeatType        string  `bson:"meat_type" json:"meat_type"`
	Quantity        float64 `bson:"quantity" json:"quantity"` // kg
	ProcessingDate  string  `bson:"processing_date" json:"processing_date"`
	StorageLocation string  `bson:"storage_location" json:"storage_location"`
	BatchNumber     string  `bson:"batch_number" json:"batch_number"`
	ExpirationDate  string  `bson:"expiration_date" json:"expiration_date"`
}
