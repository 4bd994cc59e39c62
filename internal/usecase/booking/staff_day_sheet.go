package booking

import (
	"context"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

// GetStaffDaySheet lists one staff member's appointments for a day. The
// staff resource is derived from the authenticated principal, never from an
// arbitrary first-row lookup.
type GetStaffDaySheet struct {
	repo domain.Repository
	cfg  *config.Config
}

func NewGetStaffDaySheet(repo domain.Repository, cfg *config.Config) *GetStaffDaySheet {
	return &GetStaffDaySheet{repo: repo, cfg: cfg}
}

func (uc *GetStaffDaySheet) Execute(
	ctx context.Context,
	staffUserID uint,
	date time.Time,
) ([]models.Booking, error) {

	staff, err := uc.repo.GetStaffByUserID(ctx, staffUserID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	loc := timezone.Location(uc.cfg.Timezone)
	dayStart, dayEnd := timezone.DayBounds(date, loc)

	return uc.repo.ListBookingsForStaffDay(ctx, staff.ID, dayStart, dayEnd)
}
