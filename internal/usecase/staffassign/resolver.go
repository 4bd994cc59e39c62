package staffassign

import (
	"context"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

// Resolver turns an optional explicit staff id into a concrete staff
// resource. Zero means "any available": the first active staff ordered by
// name, a deterministic non-load-balancing policy. The resolver does not
// probe the calendar; the creation transaction re-verifies the chosen
// staff's window before commit.
type Resolver struct {
	repo domain.Repository
}

func NewResolver(repo domain.Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (r *Resolver) Resolve(
	ctx context.Context,
	explicitStaffID uint,
) (*models.Staff, error) {

	if explicitStaffID != 0 {
		staff, err := r.repo.GetStaff(ctx, explicitStaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		return staff, nil
	}

	staff, err := r.repo.FirstActiveStaffByName(ctx)
	if err != nil {
		return nil, httperr.ErrBusiness("no_staff_available")
	}

	return staff, nil
}
