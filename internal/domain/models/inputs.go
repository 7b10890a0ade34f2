package models

// Raw create payloads as decoded by the transport adapter. Numeric fields are
// pointers so a missing field stays distinguishable from zero; validation
// decides what each absence means.

// InventoryInput is the raw payload for creating an inventory item.
type InventoryInput struct {
	MeatType        string   `json:"meat_type"`
	Quantity        *float64 `json:"quantity"`
	ProcessingDate  string   `json:"processing_date"`
	StorageLocation string   `json:"storage_location"`
	BatchNumber     string   `json:"batch_number"`
	ExpirationDate  string   `json:"expiration_date"`
}

// SaleInput is the raw payload for creating a sale record. ProductID is
// optional; a missing one is derived from the product name.
type SaleInput struct {
	ProductID     string   `json:"product_id"`
	ProductName   string   `json:"product_name"`
	QuantitySold  *float64 `json:"quantity_sold"`
	TotalQuantity *float64 `json:"total_quantity"`
	TotalAmount   *float64 `json:"total_amount"`
	SaleDate      string   `json:"sale_date"`
}

// LossInput is the raw payload for creating a loss record. Notes are
// optional with no length constraint.
type LossInput struct {
	RecordDate    string   `json:"record_date"`
	MeatType      string   `json:"meat_type"`
	Stage         string   `json:"stage"`
	WastageAmount *float64 `json:"wastage_amount"`
	Notes         string   `json:"notes"`
}
