package booking

import (
	"context"
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
	"github.com/piyushrajyadav/Nexusaloon/internal/usecase/staffassign"
)

type AvailabilityInput struct {
	Date      time.Time
	StaffID   uint // 0 = any staff; resolved the same way creation would
	ServiceID uint
}

// AvailabilityCache holds a day's busy intervals per staff. Optional; a nil
// cache means every query goes to storage.
type AvailabilityCache interface {
	GetDay(ctx context.Context, staffID uint, day string) ([]domain.Interval, bool)
	SetDay(ctx context.Context, staffID uint, day string, intervals []domain.Interval)
	Invalidate(ctx context.Context, staffID uint, day string)
}

type GetAvailability struct {
	repo     domain.Repository
	resolver *staffassign.Resolver
	cache    AvailabilityCache
	cfg      *config.Config
}

func NewGetAvailability(
	repo domain.Repository,
	resolver *staffassign.Resolver,
	cache AvailabilityCache,
	cfg *config.Config,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		resolver: resolver,
		cache:    cache,
		cfg:      cfg,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	staff, err := uc.resolver.Resolve(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(uc.cfg.Timezone)
	dayStart, dayEnd := timezone.DayBounds(in.Date, loc)
	day := dayStart.Format("2006-01-02")

	busy, ok := uc.cachedDay(ctx, staff.ID, day)
	if !ok {
		busy, err = uc.repo.ListActiveIntervalsForDay(ctx, staff.ID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		if uc.cache != nil {
			uc.cache.SetDay(ctx, staff.ID, day, busy)
		}
	}

	open, err := timezone.At(dayStart, uc.cfg.OpenTime, loc)
	if err != nil {
		return nil, err
	}
	close, err := timezone.At(dayStart, uc.cfg.CloseTime, loc)
	if err != nil {
		return nil, err
	}

	step := time.Duration(uc.cfg.SlotIntervalMin) * time.Minute
	duration := time.Duration(svc.DurationMin) * time.Minute

	slots := domain.AvailableSlots(open, close, step, duration, busy)

	// For today, slots already behind the clock are gone.
	now := timezone.NowIn(uc.cfg.Timezone)
	if now.After(open) && now.Before(dayEnd) {
		slots = dropPast(slots, dayStart, now, loc)
	}

	return slots, nil
}

func (uc *GetAvailability) cachedDay(
	ctx context.Context,
	staffID uint,
	day string,
) ([]domain.Interval, bool) {
	if uc.cache == nil {
		return nil, false
	}
	return uc.cache.GetDay(ctx, staffID, day)
}

func dropPast(slots []string, day time.Time, now time.Time, loc *time.Location) []string {
	kept := slots[:0]
	for _, s := range slots {
		start, err := timezone.At(day, s, loc)
		if err != nil {
			continue
		}
		if start.After(now) {
			kept = append(kept, s)
		}
	}
	return kept
}
