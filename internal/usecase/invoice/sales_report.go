package invoice

import (
	"context"
	"time"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
)

type SalesRow struct {
	InvoiceNumber string  `json:"invoice_number"`
	Date          string  `json:"date"`
	Customer      string  `json:"customer"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
}

// SalesReport flattens PAID invoices in a date range into export rows.
type SalesReport struct {
	repo domain.Repository
}

func NewSalesReport(repo domain.Repository) *SalesReport {
	return &SalesReport{repo: repo}
}

func (uc *SalesReport) Execute(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]SalesRow, error) {

	invoices, err := uc.repo.ListPaidBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	rows := make([]SalesRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, SalesRow{
			InvoiceNumber: inv.InvoiceNumber,
			Date:          inv.CreatedAt.Format("2006-01-02"),
			Customer:      inv.Customer.Name,
			Subtotal:      inv.Subtotal,
			Tax:           inv.TaxAmount,
			Total:         inv.TotalAmount,
			Status:        inv.Status,
		})
	}

	return rows, nil
}
