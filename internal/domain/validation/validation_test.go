package validation

import (
	"strings"
	"testing"

	"github.com/mamadbah2/mangsho/internal/domain/models"
)

func f(v float64) *float64 { return &v }

func validInventory() models.InventoryInput {
	return models.InventoryInput{
		MeatType:        "Beef",
		Quantity:        f(120.5),
		ProcessingDate:  "2024-05-10",
		StorageLocation: "Freezer 2",
		BatchNumber:     "B-1042",
		ExpirationDate:  "2024-05-20",
	}
}

func validSale() models.SaleInput {
	return models.SaleInput{
		ProductName:   "Beef Sirloin",
		QuantitySold:  f(4),
		TotalQuantity: f(40),
		TotalAmount:   f(3200),
		SaleDate:      "2024-05-12",
	}
}

func validLoss() models.LossInput {
	return models.LossInput{
		RecordDate:    "2024-05-11",
		MeatType:      "Chicken",
		Stage:         "Deboning",
		WastageAmount: f(2.4),
		Notes:         "trim waste",
	}
}

func TestParseDateStrict(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-30", false},
		{"2024-04-31", false},
		{"2024-05-10", true},
		{"2024-5-10", false},
		{"10-05-2024", false},
		{"", false},
		{"2024-05-10T00:00:00", false},
	}
	for _, tt := range tests {
		_, err := ParseDate(tt.value)
		if (err == nil) != tt.ok {
			t.Errorf("ParseDate(%q): err = %v, want ok=%v", tt.value, err, tt.ok)
		}
	}
}

func TestInventoryValid(t *testing.T) {
	item, errs := Inventory(validInventory())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if item.MeatType != "Beef" || item.Quantity != 120.5 || item.BatchNumber != "B-1042" {
		t.Errorf("item fields not carried over: %+v", item)
	}
}

func TestInventoryZeroQuantityAccepted(t *testing.T) {
	in := validInventory()
	in.Quantity = f(0)
	if _, errs := Inventory(in); len(errs) != 0 {
		t.Errorf("quantity 0 should be accepted, got %v", errs)
	}
}

func TestInventoryNegativeQuantityRejected(t *testing.T) {
	in := validInventory()
	in.Quantity = f(-1)
	_, errs := Inventory(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "Quantity") {
		t.Errorf("want single quantity error, got %v", errs)
	}
}

func TestInventoryExpirationBeforeProcessing(t *testing.T) {
	in := validInventory()
	in.ProcessingDate = "2024-05-10"
	in.ExpirationDate = "2024-05-09"
	_, errs := Inventory(in)
	if len(errs) != 1 {
		t.Fatalf("want exactly one error, got %v", errs)
	}
	if !strings.Contains(errs[0], "Expiration Date cannot be earlier") {
		t.Errorf("wrong error: %q", errs[0])
	}
}

func TestInventoryExpirationEqualProcessingAccepted(t *testing.T) {
	in := validInventory()
	in.ProcessingDate = "2024-05-10"
	in.ExpirationDate = "2024-05-10"
	if _, errs := Inventory(in); len(errs) != 0 {
		t.Errorf("equal dates should be accepted, got %v", errs)
	}
}

func TestInventoryChronologyNotCheckedWhenDateInvalid(t *testing.T) {
	in := validInventory()
	in.ExpirationDate = "2024-02-30"
	_, errs := Inventory(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid Expiration Date") {
		t.Errorf("want only the format error, got %v", errs)
	}
}

func TestInventoryCollectsAllErrorsInOrder(t *testing.T) {
	_, errs := Inventory(models.InventoryInput{})
	want := []string{
		"Meat Type is required.",
		"Quantity must be a non-negative number.",
		"Processing Date is required.",
		"Storage Location is required.",
		"Batch Number is required.",
		"Expiration Date is required.",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(want))
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestSaleValid(t *testing.T) {
	rec, errs := Sale(validSale())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.ProductName != "Beef Sirloin" || rec.TotalAmount != 3200 {
		t.Errorf("record fields not carried over: %+v", rec)
	}
}

func TestSaleQuantitySoldMustBePositive(t *testing.T) {
	in := validSale()
	in.QuantitySold = f(0)
	_, errs := Sale(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "Quantity Sold") {
		t.Errorf("want quantity-sold error, got %v", errs)
	}
}

func TestSaleZeroAmountAccepted(t *testing.T) {
	in := validSale()
	in.TotalAmount = f(0)
	if _, errs := Sale(in); len(errs) != 0 {
		t.Errorf("zero amount should be accepted, got %v", errs)
	}
}

func TestSaleInvalidDateRejected(t *testing.T) {
	in := validSale()
	in.SaleDate = "2024-02-30"
	_, errs := Sale(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "Invalid Sale Date") {
		t.Errorf("want sale-date error, got %v", errs)
	}
}

func TestSaleOptionalProductIDPassedThrough(t *testing.T) {
	in := validSale()
	in.ProductID = "SKU-7"
	rec, errs := Sale(in)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.ProductID != "SKU-7" {
		t.Errorf("ProductID = %q, want SKU-7", rec.ProductID)
	}
}

func TestLossValid(t *testing.T) {
	rec, errs := Loss(validLoss())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if rec.Stage != "Deboning" || rec.WastageAmount != 2.4 {
		t.Errorf("record fields not carried over: %+v", rec)
	}
}

func TestLossWastageMustBePositive(t *testing.T) {
	in := validLoss()
	in.WastageAmount = f(0)
	_, errs := Loss(in)
	if len(errs) != 1 || !strings.Contains(errs[0], "Wastage Amount") {
		t.Errorf("want wastage error, got %v", errs)
	}
}

func TestLossNotesOptional(t *testing.T) {
	in := validLoss()
	in.Notes = ""
	if _, errs := Loss(in); len(errs) != 0 {
		t.Errorf("missing notes should be accepted, got %v", errs)
	}
}

func TestLossCollectsAllErrorsInOrder(t *testing.T) {
	_, errs := Loss(models.LossInput{})
	want := []string{
		"Record Date is required.",
		"Meat Type is required.",
		"Stage is required.",
		"Wastage Amount must be a positive number.",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %v, want %v", errs, want)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestErrorJoinsMessages(t *testing.T) {
	err := &Error{Messages: []string{"a.", "b."}}
	if err.Error() != "a. b." {
		t.Errorf("Error() = %q", err.Error())
	}
}
