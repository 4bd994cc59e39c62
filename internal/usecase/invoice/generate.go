package invoice

import (
	"context"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/metrics"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

type GenerateInvoice struct {
	repo  domain.Repository
	audit *audit.Logger
	cfg   *config.Config
}

func NewGenerateInvoice(
	repo domain.Repository,
	auditLogger *audit.Logger,
	cfg *config.Config,
) *GenerateInvoice {
	return &GenerateInvoice{
		repo:  repo,
		audit: auditLogger,
		cfg:   cfg,
	}
}

// Execute issues the one invoice a booking can ever have. Amounts are
// snapshotted from the service price at issuing time and never recomputed.
// The pre-check below is a fast path; the unique index on booking_id is the
// guard that holds under concurrency.
func (uc *GenerateInvoice) Execute(
	ctx context.Context,
	bookingID uint,
	actorUserID uint,
) (*models.Invoice, error) {

	b, err := uc.repo.GetBookingWithService(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	exists, err := uc.repo.InvoiceExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("invoice_already_exists")
	}

	subtotal := b.Service.Price
	taxAmount, totalAmount := domain.Amounts(subtotal, uc.cfg.TaxRate)

	item, err := domain.NewLineItem(b.Service.Name, 1, subtotal)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.cfg.Timezone)

	inv := &models.Invoice{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		Subtotal:    subtotal,
		TaxAmount:   taxAmount,
		TotalAmount: totalAmount,
		Status:      string(domain.StatusPending),
		IssuedAt:    now,
		Items: []models.InvoiceLineItem{
			{
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Total:       item.Total,
			},
		},
	}

	if err := uc.repo.CreateWithNumber(ctx, inv, uc.cfg.InvoicePrefix, now); err != nil {
		return nil, err
	}

	metrics.InvoicesGenerated.Inc()

	if uc.audit != nil {
		uc.audit.Log(&actorUserID, "invoice_generated", "invoice", &inv.ID, map[string]any{
			"booking_id": b.ID,
			"number":     inv.InvoiceNumber,
		})
	}

	return inv, nil
}
