package staffassign

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

var errNotFound = errors.New("record not found")

type stubRepo struct {
	domain.Repository

	staff       map[uint]*models.Staff
	firstActive *models.Staff
}

func (s *stubRepo) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	if st, ok := s.staff[id]; ok {
		return st, nil
	}
	return nil, errNotFound
}

func (s *stubRepo) FirstActiveStaffByName(_ context.Context) (*models.Staff, error) {
	if s.firstActive == nil {
		return nil, errNotFound
	}
	return s.firstActive, nil
}

func TestResolve_ExplicitStaff(t *testing.T) {
	repo := &stubRepo{staff: map[uint]*models.Staff{
		2: {ID: 2, Name: "Zoe", Active: true},
	}}

	staff, err := NewResolver(repo).Resolve(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, uint(2), staff.ID)
}

func TestResolve_ExplicitStaffMissing(t *testing.T) {
	repo := &stubRepo{staff: map[uint]*models.Staff{}}

	_, err := NewResolver(repo).Resolve(context.Background(), 42)

	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestResolve_AnyAvailableIsFirstByName(t *testing.T) {
	repo := &stubRepo{firstActive: &models.Staff{ID: 3, Name: "Aisha", Active: true}}

	staff, err := NewResolver(repo).Resolve(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, "Aisha", staff.Name)
}

func TestResolve_NoActiveStaff(t *testing.T) {
	repo := &stubRepo{}

	_, err := NewResolver(repo).Resolve(context.Background(), 0)

	assert.True(t, httperr.IsBusiness(err, "no_staff_available"))
}
