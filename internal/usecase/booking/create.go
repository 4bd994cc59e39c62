package booking

import (
	"context"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/metrics"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/notify"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
	"github.com/piyushrajyadav/Nexusaloon/internal/usecase/staffassign"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID    uint
	UserEmail string
	UserName  string

	ServiceID uint
	StaffID   uint // 0 = any available

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	resolver *staffassign.Resolver
	cache    AvailabilityCache
	notifier *notify.Dispatcher
	audit    *audit.Logger
	cfg      *config.Config
}

func NewCreateBooking(
	repo domain.Repository,
	resolver *staffassign.Resolver,
	cache AvailabilityCache,
	notifier *notify.Dispatcher,
	auditLogger *audit.Logger,
	cfg *config.Config,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		notifier: notifier,
		audit:    auditLogger,
		cfg:      cfg,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	staff, err := uc.resolver.Resolve(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.cfg.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	if err := uc.checkBusinessHours(start, end, loc); err != nil {
		return nil, err
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.UserID,
		in.UserName,
		in.UserEmail,
	)
	if err != nil {
		return nil, err
	}

	dayStart, _ := timezone.DayBounds(start, loc)

	b := &models.Booking{
		CustomerID: customer.ID,
		ServiceID:  svc.ID,
		StaffID:    staff.ID,
		Date:       dayStart,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	// Overlap re-check and insert happen atomically inside the repository
	// transaction; the resolver above deliberately did not look at the
	// calendar.
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.BookingConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, staff.ID, dayStart.Format("2006-01-02"))
	}

	if uc.notifier != nil {
		uc.notifier.BookingConfirmed(customer.ID, b.ID, start)
	}

	if uc.audit != nil {
		uc.audit.Log(&in.UserID, "booking_created", "booking", &b.ID, nil)
	}

	return b, nil
}

func (uc *CreateBooking) checkBusinessHours(
	start time.Time,
	end time.Time,
	loc *time.Location,
) error {

	open, err := timezone.At(start, uc.cfg.OpenTime, loc)
	if err != nil {
		return err
	}
	close, err := timezone.At(start, uc.cfg.CloseTime, loc)
	if err != nil {
		return err
	}

	if start.Before(open) || end.After(close) {
		return httperr.ErrBusiness("outside_business_hours")
	}

	return nil
}
