package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
)

func TestUpdateBookingStatus_Complete(t *testing.T) {
	cfg := testConfig()
	repo := newMockRepo()
	seedBooking(repo, string(domain.StatusConfirmed))

	uc := NewUpdateBookingStatus(repo, nil, nil, cfg)

	b, err := uc.Execute(context.Background(), 1, "COMPLETED", 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), b.Status)
	assert.NotNil(t, b.CompletedAt)
}

func TestUpdateBookingStatus_CompletedIsTerminal(t *testing.T) {
	cfg := testConfig()
	repo := newMockRepo()
	seedBooking(repo, string(domain.StatusCompleted))

	uc := NewUpdateBookingStatus(repo, nil, nil, cfg)

	_, err := uc.Execute(context.Background(), 1, "CANCELLED", 10)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, string(domain.StatusCompleted), repo.bookings[1].Status)
}

func TestUpdateBookingStatus_UnknownStatus(t *testing.T) {
	cfg := testConfig()
	repo := newMockRepo()
	seedBooking(repo, string(domain.StatusConfirmed))

	uc := NewUpdateBookingStatus(repo, nil, nil, cfg)

	_, err := uc.Execute(context.Background(), 1, "ARCHIVED", 10)

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateBookingStatus_NoShowFreesTheSlot(t *testing.T) {
	cfg := testConfig()
	repo := newMockRepo()
	seedBooking(repo, string(domain.StatusConfirmed))

	cache := newMockCache()
	uc := NewUpdateBookingStatus(repo, cache, nil, cfg)

	b, err := uc.Execute(context.Background(), 1, "NO_SHOW", 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusNoShow), b.Status)
	assert.False(t, domain.Status(b.Status).Active())
	assert.Len(t, cache.invalidations, 1)
}
