package models

// LossRecord captures wastage at some stage of the processing pipeline.
type LossRecord struct {
	ID            string  `bson:"-" json:"id,omitempty"`
	RecordDate    string  `bson:"record_date" json:"record_date"`
	MeatType      string  `bson:"meat_type" json:"meat_type"`
	Stage         string  `bson:"stage" json:"stage"`
	WastageAmount float64 `bson:"wastage_amount" json:"wastage_amount"` // kg
	Notes         string  `bson:"notes" json:"notes"`
}
