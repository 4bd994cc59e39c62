package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var st models.Staff
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *BookingGormRepository) GetStaffByUserID(
	ctx context.Context,
	userID uint,
) (*models.Staff, error) {

	var st models.Staff
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *BookingGormRepository) FirstActiveStaffByName(
	ctx context.Context,
) (*models.Staff, error) {

	var st models.Staff
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomerByUserID(
	ctx context.Context,
	userID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	userID uint,
	name string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	if name == "" {
		// default profile name, same shortcut the booking page uses
		name = strings.SplitN(email, "@", 2)[0]
	}

	customer = models.Customer{
		UserID: userID,
		Name:   name,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Re-check the window under lock. Two concurrent creates for the
		// same staff serialize here; the exclusion constraint catches
		// anything that still slips through.
		var count int64
		if err := tx.
			Model(&models.Booking{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND status NOT IN ('CANCELLED', 'NO_SHOW') AND start_time < ? AND end_time > ?",
				b.StaffID,
				b.EndTime,
				b.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(b).Error
	})

	if err != nil && httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}

	return err
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Staff").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Availability / listings
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveIntervalsForDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.Interval, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"staff_id = ? AND status NOT IN ('CANCELLED', 'NO_SHOW') AND start_time >= ? AND start_time < ?",
			staffID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(rows))
	for _, row := range rows {
		intervals = append(intervals, domain.Interval{
			Start: row.StartTime,
			End:   row.EndTime,
		})
	}

	return intervals, nil
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		Where("customer_id = ?", customerID).
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForStaffDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where(
			"staff_id = ? AND start_time >= ? AND start_time < ?",
			staffID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Staff").
		Order("start_time DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
