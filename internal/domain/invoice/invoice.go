package invoice

import (
	"fmt"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
)

// ===============================
// Invoice Status
// ===============================

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusFailed   Status = "FAILED"
	StatusRefunded Status = "REFUNDED"
)

func Valid(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// ===============================
// Amounts
// ===============================

// Amounts derives tax and total from a snapshotted subtotal. Fixed at
// issuing time; later service price changes never recompute an invoice.
func Amounts(subtotal, taxRate float64) (taxAmount, totalAmount float64) {
	taxAmount = subtotal * taxRate
	totalAmount = subtotal + taxAmount
	return taxAmount, totalAmount
}

// ===============================
// Numbering
// ===============================

// FormatNumber renders <prefix>-<yearMonth>-<sequence>, sequence zero-padded
// to 4 digits. The sequence itself comes from the per-month counter bumped
// inside the issuing transaction.
func FormatNumber(prefix string, issuedAt time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, issuedAt.Format("200601"), seq)
}

// ===============================
// Line Items
// ===============================

type LineItem struct {
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// NewLineItem validates at construction; invoices never carry loose blobs.
func NewLineItem(description string, quantity int, unitPrice float64) (LineItem, error) {
	if description == "" {
		return LineItem{}, httperr.ErrBusiness("invalid_line_item")
	}
	if quantity <= 0 {
		return LineItem{}, httperr.ErrBusiness("invalid_line_item")
	}
	if unitPrice < 0 {
		return LineItem{}, httperr.ErrBusiness("invalid_line_item")
	}

	return LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       unitPrice * float64(quantity),
	}, nil
}
