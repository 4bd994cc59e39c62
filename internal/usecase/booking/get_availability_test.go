package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
	"github.com/piyushrajyadav/Nexusaloon/internal/usecase/staffassign"
)

func newAvailabilityUC(repo *mockRepo, cache *mockCache) *GetAvailability {
	var c AvailabilityCache
	if cache != nil {
		c = cache
	}
	return NewGetAvailability(repo, staffassign.NewResolver(repo), c, testConfig())
}

func availabilityDay(t *testing.T) (time.Time, *time.Location) {
	t.Helper()
	loc := timezone.Location("Asia/Kolkata")
	day := time.Now().In(loc).AddDate(0, 0, 7)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc), loc
}

func TestGetAvailability_BusyWindowHidesOverlappingSlots(t *testing.T) {
	day, loc := availabilityDay(t)

	repo := newMockRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Haircut", DurationMin: 30, Price: 500, Active: true}
	repo.staffByID[2] = &models.Staff{ID: 2, Name: "Zoe", Active: true}
	repo.intervals = []domain.Interval{{
		Start: time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, loc),
		End:   time.Date(day.Year(), day.Month(), day.Day(), 10, 45, 0, 0, loc),
	}}

	uc := newAvailabilityUC(repo, nil)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      day,
		StaffID:   2,
		ServiceID: 1,
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "11:00")
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	day, _ := availabilityDay(t)

	repo := newMockRepo()
	uc := newAvailabilityUC(repo, nil)

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      day,
		StaffID:   2,
		ServiceID: 99,
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_AnyStaffResolvesLikeCreation(t *testing.T) {
	day, _ := availabilityDay(t)

	repo := newMockRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Haircut", DurationMin: 30, Price: 500, Active: true}
	repo.firstActive = &models.Staff{ID: 3, Name: "Aisha", Active: true}

	uc := newAvailabilityUC(repo, nil)

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      day,
		StaffID:   0,
		ServiceID: 1,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, slots)
}

func TestGetAvailability_SecondQueryServedFromCache(t *testing.T) {
	day, _ := availabilityDay(t)

	repo := newMockRepo()
	repo.services[1] = &models.Service{ID: 1, Name: "Haircut", DurationMin: 30, Price: 500, Active: true}
	repo.staffByID[2] = &models.Staff{ID: 2, Name: "Zoe", Active: true}

	cache := newMockCache()
	uc := newAvailabilityUC(repo, cache)

	in := AvailabilityInput{Date: day, StaffID: 2, ServiceID: 1}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 1, repo.intervalCalls)

	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.intervalCalls)
}
