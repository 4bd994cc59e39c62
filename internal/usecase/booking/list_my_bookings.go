package booking

import (
	"context"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	customer, err := uc.repo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		// no profile yet means no bookings yet
		return []models.Booking{}, nil
	}

	return uc.repo.ListBookingsForCustomer(ctx, customer.ID)
}
