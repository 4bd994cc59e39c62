package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

func TestCanCancel(t *testing.T) {
	tests := []struct {
		current Status
		wantErr bool
	}{
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusNoShow, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			err := CanCancel(tt.current)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, "invalid_state"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanSetStatus_CompletedIsTerminal(t *testing.T) {
	err := CanSetStatus(StatusCompleted, StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	// re-asserting the terminal state is a no-op transition
	assert.NoError(t, CanSetStatus(StatusCompleted, StatusCompleted))
}

func TestCanSetStatus_RejectsUnknownStatus(t *testing.T) {
	err := CanSetStatus(StatusConfirmed, Status("ARCHIVED"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancel_SetsStatusAndTimestamp(t *testing.T) {
	now := time.Now()
	b := &models.Booking{Status: string(StatusConfirmed)}

	require.NoError(t, Cancel(b, now))

	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestSetStatus_CompletedStampsOnce(t *testing.T) {
	first := time.Now()
	b := &models.Booking{Status: string(StatusConfirmed)}

	require.NoError(t, SetStatus(b, StatusCompleted, first))
	require.NotNil(t, b.CompletedAt)

	later := first.Add(time.Hour)
	require.NoError(t, SetStatus(b, StatusCompleted, later))
	assert.Equal(t, first, *b.CompletedAt)
}

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusConfirmed.Active())
	assert.True(t, StatusPending.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, StatusNoShow.Active())
}
