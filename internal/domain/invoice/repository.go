package invoice

import (
	"context"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type Repository interface {
	GetBookingWithService(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	InvoiceExistsForBooking(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// CreateWithNumber bumps the per-month sequence and inserts the invoice
	// plus its line items in one transaction. On a duplicate booking_id it
	// returns the invoice_already_exists business error.
	CreateWithNumber(
		ctx context.Context,
		inv *models.Invoice,
		prefix string,
		issuedAt time.Time,
	) error

	GetInvoice(
		ctx context.Context,
		id uint,
	) (*models.Invoice, error)

	UpdateInvoice(
		ctx context.Context,
		inv *models.Invoice,
	) error

	ListInvoices(
		ctx context.Context,
	) ([]models.Invoice, error)

	ListPaidBetween(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Invoice, error)
}
