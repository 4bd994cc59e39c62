package booking

import (
	"context"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	GetStaffByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Staff, error)

	// FirstActiveStaffByName backs the "any available" assignment policy:
	// deterministic, name-ascending, no load balancing.
	FirstActiveStaffByName(
		ctx context.Context,
	) (*models.Staff, error)

	// -------- Customer --------
	GetCustomerByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		userID uint,
		name string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking runs the overlap re-check and the insert in a single
	// transaction, locking the staff's conflicting rows. Returns the
	// time_conflict business error when the window is taken.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability / listings --------
	ListActiveIntervalsForDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]Interval, error)

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForStaffDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)
}
