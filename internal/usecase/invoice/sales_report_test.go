package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

func TestSalesReport_OnlyPaidInvoicesInRange(t *testing.T) {
	repo := newMockInvoiceRepo()

	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	repo.invoices[1] = &models.Invoice{
		ID:            1,
		InvoiceNumber: "INV-202603-0001",
		Customer:      models.Customer{Name: "Ana"},
		Subtotal:      500,
		TaxAmount:     90,
		TotalAmount:   590,
		Status:        string(domain.StatusPaid),
		CreatedAt:     base,
	}
	repo.invoices[2] = &models.Invoice{
		ID:            2,
		InvoiceNumber: "INV-202603-0002",
		Status:        string(domain.StatusPending),
		CreatedAt:     base,
	}
	repo.invoices[3] = &models.Invoice{
		ID:            3,
		InvoiceNumber: "INV-202601-0009",
		Status:        string(domain.StatusPaid),
		CreatedAt:     base.AddDate(0, -2, 0),
	}

	uc := NewSalesReport(repo)

	rows, err := uc.Execute(
		context.Background(),
		base.AddDate(0, 0, -7),
		base.AddDate(0, 0, 7),
	)

	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "INV-202603-0001", row.InvoiceNumber)
	assert.Equal(t, "2026-03-10", row.Date)
	assert.Equal(t, "Ana", row.Customer)
	assert.InDelta(t, 590.0, row.Total, 0.001)
	assert.Equal(t, string(domain.StatusPaid), row.Status)
}

func TestSalesReport_EmptyRange(t *testing.T) {
	repo := newMockInvoiceRepo()

	uc := NewSalesReport(repo)

	rows, err := uc.Execute(
		context.Background(),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	assert.Empty(t, rows)
}
