package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
)

func TestFormatNumber(t *testing.T) {
	issued := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "INV-202603-0001", FormatNumber("INV", issued, 1))
	assert.Equal(t, "INV-202603-0042", FormatNumber("INV", issued, 42))
	assert.Equal(t, "INV-202603-12345", FormatNumber("INV", issued, 12345))

	december := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202612-0007", FormatNumber("INV", december, 7))
}

func TestAmounts(t *testing.T) {
	tax, total := Amounts(500, 0.18)

	assert.InDelta(t, 90.0, tax, 0.001)
	assert.InDelta(t, 590.0, total, 0.001)
}

func TestAmounts_ZeroSubtotal(t *testing.T) {
	tax, total := Amounts(0, 0.18)

	assert.Zero(t, tax)
	assert.Zero(t, total)
}

func TestNewLineItem(t *testing.T) {
	item, err := NewLineItem("Haircut", 2, 250)

	require.NoError(t, err)
	assert.Equal(t, "Haircut", item.Description)
	assert.Equal(t, 2, item.Quantity)
	assert.InDelta(t, 500.0, item.Total, 0.001)
}

func TestNewLineItem_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		description string
		quantity    int
		unitPrice   float64
	}{
		{"empty description", "", 1, 100},
		{"zero quantity", "Haircut", 0, 100},
		{"negative quantity", "Haircut", -1, 100},
		{"negative price", "Haircut", 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLineItem(tt.description, tt.quantity, tt.unitPrice)
			assert.True(t, httperr.IsBusiness(err, "invalid_line_item"))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(StatusPending))
	assert.True(t, Valid(StatusPaid))
	assert.True(t, Valid(StatusFailed))
	assert.True(t, Valid(StatusRefunded))
	assert.False(t, Valid(Status("VOID")))
}
