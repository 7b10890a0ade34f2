// Package validation implements the field and cross-field rules for the
// three record kinds. Validation is exhaustive: every applicable violation is
// collected in field declaration order, except that the chronological
// comparison between dates only runs once both dates parsed. Functions here
// are pure and never return Go errors; violations are data.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/mamadbah2/mangsho/internal/domain/models"
)

// Error carries the ordered rule violations for one rejected payload.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, " ")
}

// ParseDate parses value against the fixed calendar-date form and requires
// the parsed value to re-render identically. This rejects calendar-invalid
// input such as "2024-02-30" that a lenient parser would roll over, and any
// value not in the exact expected shape.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if parsed.Format(models.DateLayout) != value {
		return time.Time{}, fmt.Errorf("date %q does not round-trip", value)
	}
	return parsed, nil
}

// Inventory validates a raw inventory payload. On success the returned
// message slice is empty and the item is ready for insertion.
func Inventory(in models.InventoryInput) (models.InventoryItem, []string) {
	var errs []string

	if strings.TrimSpace(in.MeatType) == "" {
		errs = append(errs, "Meat Type is required.")
	}
	if in.Quantity == nil || *in.Quantity < 0 {
		errs = append(errs, "Quantity must be a non-negative number.")
	}

	var procDate, expDate time.Time
	var procOK, expOK bool

	if in.ProcessingDate == "" {
		errs = append(errs, "Processing Date is required.")
	} else if procDate, procOK = parseDateOK(in.ProcessingDate); !procOK {
		errs = append(errs, "Invalid Processing Date format. Please use YYYY-MM-DD.")
	}

	if strings.TrimSpace(in.StorageLocation) == "" {
		errs = append(errs, "Storage Location is required.")
	}
	if strings.TrimSpace(in.BatchNumber) == "" {
		errs = append(errs, "Batch Number is required.")
	}

	if in.ExpirationDate == "" {
		errs = append(errs, "Expiration Date is required.")
	} else if expDate, expOK = parseDateOK(in.ExpirationDate); !expOK {
		errs = append(errs, "Invalid Expiration Date format. Please use YYYY-MM-DD.")
	}

	if procOK && expOK && expDate.Before(procDate) {
		errs = append(errs, "Expiration Date cannot be earlier than Processing Date.")
	}

	if len(errs) > 0 {
		return models.InventoryItem{}, errs
	}

	return models.InventoryItem{
		MeatType:        in.MeatType,
		Quantity:        *in.Quantity,
		ProcessingDate:  in.ProcessingDate,
		StorageLocation: in.StorageLocation,
		BatchNumber:     in.BatchNumber,
		ExpirationDate:  in.ExpirationDate,
	}, nil
}

// Sale validates a raw sale payload. ProductID is passed through untouched;
// deriving a missing one is the records service's job.
func Sale(in models.SaleInput) (models.SaleRecord, []string) {
	var errs []string

	if strings.TrimSpace(in.ProductName) == "" {
		errs = append(errs, "Product Name is required.")
	}
	if in.QuantitySold == nil || *in.QuantitySold <= 0 {
		errs = append(errs, "Quantity Sold must be a positive number.")
	}
	if in.TotalQuantity == nil || *in.TotalQuantity < 0 {
		errs = append(errs, "Total Quantity must be a non-negative number.")
	}
	if in.TotalAmount == nil || *in.TotalAmount < 0 {
		errs = append(errs, "Total Amount must be a non-negative number.")
	}

	if in.SaleDate == "" {
		errs = append(errs, "Sale Date is required.")
	} else if _, ok := parseDateOK(in.SaleDate); !ok {
		errs = append(errs, "Invalid Sale Date format. Please use YYYY-MM-DD.")
	}

	if len(errs) > 0 {
		return models.SaleRecord{}, errs
	}

	return models.SaleRecord{
		ProductID:     in.ProductID,
		ProductName:   in.ProductName,
		QuantitySold:  *in.QuantitySold,
		TotalQuantity: *in.TotalQuantity,
		TotalAmount:   *in.TotalAmount,
		SaleDate:      in.SaleDate,
	}, nil
}

// Loss validates a raw loss payload. Notes are optional and unconstrained.
func Loss(in models.LossInput) (models.LossRecord, []string) {
	var errs []string

	if in.RecordDate == "" {
		errs = append(errs, "Record Date is required.")
	} else if _, ok := parseDateOK(in.RecordDate); !ok {
		errs = append(errs, "Invalid Record Date format. Please use YYYY-MM-DD.")
	}

	if strings.TrimSpace(in.MeatType) == "" {
		errs = append(errs, "Meat Type is required.")
	}
	if strings.TrimSpace(in.Stage) == "" {
		errs = append(errs, "Stage is required.")
	}
	if in.WastageAmount == nil || *in.WastageAmount <= 0 {
		errs = append(errs, "Wastage Amount must be a positive number.")
	}

	if len(errs) > 0 {
		return models.LossRecord{}, errs
	}

	return models.LossRecord{
		RecordDate:    in.RecordDate,
		MeatType:      in.MeatType,
		Stage:         in.Stage,
		WastageAmount: *in.WastageAmount,
		Notes:         in.Notes,
	}, nil
}

func parseDateOK(value string) (time.Time, bool) {
	parsed, err := ParseDate(value)
	return parsed, err == nil
}
