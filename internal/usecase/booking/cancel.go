package booking

import (
	"context"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/notify"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

type CancelBooking struct {
	repo     domain.Repository
	cache    AvailabilityCache
	notifier *notify.Dispatcher
	audit    *audit.Logger
	cfg      *config.Config
}

func NewCancelBooking(
	repo domain.Repository,
	cache AvailabilityCache,
	notifier *notify.Dispatcher,
	auditLogger *audit.Logger,
	cfg *config.Config,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		audit:    auditLogger,
		cfg:      cfg,
	}
}

// Execute cancels a booking on behalf of the authenticated customer.
// Callers who do not own the booking get unauthorized and the booking is
// left untouched.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if b.Customer.UserID != userID {
		return nil, httperr.ErrBusiness("unauthorized")
	}

	now := timezone.NowIn(uc.cfg.Timezone)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, b.StaffID, b.Date.Format("2006-01-02"))
	}

	if uc.notifier != nil {
		uc.notifier.BookingCancelled(b.CustomerID, b.ID)
	}

	if uc.audit != nil {
		uc.audit.Log(&userID, "booking_cancelled", "booking", &b.ID, nil)
	}

	return b, nil
}
