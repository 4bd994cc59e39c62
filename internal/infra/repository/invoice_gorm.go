package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type InvoiceGormRepository struct {
	db *gorm.DB
}

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{db: db}
}

func (r *InvoiceGormRepository) GetBookingWithService(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Customer").
		First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *InvoiceGormRepository) InvoiceExistsForBooking(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("booking_id = ?", bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *InvoiceGormRepository) CreateWithNumber(
	ctx context.Context,
	inv *models.Invoice,
	prefix string,
	issuedAt time.Time,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Atomic per-month sequence. The upsert serializes concurrent
		// issuers on the counter row, so two transactions can never read
		// the same value.
		var seq int64
		if err := tx.Raw(`
            INSERT INTO invoice_counters (year_month, seq)
            VALUES (?, 1)
            ON CONFLICT (year_month)
            DO UPDATE SET seq = invoice_counters.seq + 1
            RETURNING seq
        `, issuedAt.Format("200601")).Scan(&seq).Error; err != nil {
			return err
		}

		inv.InvoiceNumber = domain.FormatNumber(prefix, issuedAt, seq)

		return tx.Create(inv).Error
	})

	if err != nil && httperr.IsUniqueViolation(err) {
		// booking_id unique index: somebody issued first
		return httperr.ErrBusiness("invoice_already_exists")
	}

	return err
}

func (r *InvoiceGormRepository) GetInvoice(
	ctx context.Context,
	id uint,
) (*models.Invoice, error) {

	var inv models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		First(&inv, id).Error; err != nil {
		return nil, err
	}

	return &inv, nil
}

func (r *InvoiceGormRepository) UpdateInvoice(
	ctx context.Context,
	inv *models.Invoice,
) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *InvoiceGormRepository) ListInvoices(
	ctx context.Context,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Customer").
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *InvoiceGormRepository) ListPaidBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Invoice, error) {

	var invoices []models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("status = ? AND created_at >= ? AND created_at <= ?", "PAID", from, to).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}

	return invoices, nil
}

// Compile-time check
var _ domain.Repository = (*InvoiceGormRepository)(nil)
