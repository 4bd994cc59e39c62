package booking

import (
	"context"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	cache AvailabilityCache
	audit *audit.Logger
	cfg   *config.Config
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	cache AvailabilityCache,
	auditLogger *audit.Logger,
	cfg *config.Config,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		cache: cache,
		audit: auditLogger,
		cfg:   cfg,
	}
}

// Execute is the administrative transition: staff and admins may move a
// booking to any non-terminal state; COMPLETED stays COMPLETED.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	bookingID uint,
	next string,
	actorUserID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.cfg.Timezone)
	if err := domain.SetStatus(b, domain.Status(next), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, b.StaffID, b.Date.Format("2006-01-02"))
	}

	if uc.audit != nil {
		uc.audit.Log(&actorUserID, "booking_status_updated", "booking", &b.ID, map[string]any{
			"status": next,
		})
	}

	return b, nil
}
