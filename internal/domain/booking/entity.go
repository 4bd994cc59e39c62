package booking

import (
	"time"

	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func SetStatus(b *models.Booking, next Status, now time.Time) error {
	if err := CanSetStatus(Status(b.Status), next); err != nil {
		return err
	}

	b.Status = string(next)

	switch next {
	case StatusCompleted:
		if b.CompletedAt == nil {
			b.CompletedAt = &now
		}
	case StatusCancelled:
		if b.CancelledAt == nil {
			b.CancelledAt = &now
		}
	}

	return nil
}
