package models

// SaleRecord captures one sales transaction.
type SaleRecord struct {
	ID            string  `bson:"-" json:"id,omitempty"`
	ProductID     string  `bson:"product_id" json:"product_id"`
	ProductName   string  `bson:"product_name" json:"product_name"`
	QuantitySold  float64 `bson:"quantity_sold" json:"quantity_sold"`
	TotalQuantity float64 `bson:"total_quantity" json:"total_quantity"`
	TotalAmount   float64 `bson:"total_amount" json:"total_amount"`
	SaleDate      string  `bson:"sale_date" json:"sale_date"`
}
