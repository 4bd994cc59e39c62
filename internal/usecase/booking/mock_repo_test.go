package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

var errNotFound = errors.New("record not found")

// mockRepo is an in-memory stand-in for the gorm repository.
type mockRepo struct {
	services    map[uint]*models.Service
	staffByID   map[uint]*models.Staff
	staffByUser map[uint]*models.Staff
	firstActive *models.Staff

	customers  map[uint]*models.Customer
	nextCustID uint

	bookings map[uint]*models.Booking

	intervals     []domain.Interval
	intervalCalls int

	createErr   error
	created     *models.Booking
	updateCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		services:    map[uint]*models.Service{},
		staffByID:   map[uint]*models.Staff{},
		staffByUser: map[uint]*models.Staff{},
		customers:   map[uint]*models.Customer{},
		bookings:    map[uint]*models.Booking{},
		nextCustID:  1,
	}
}

func (m *mockRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if svc, ok := m.services[id]; ok {
		return svc, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	if s, ok := m.staffByID[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) GetStaffByUserID(_ context.Context, userID uint) (*models.Staff, error) {
	if s, ok := m.staffByUser[userID]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) FirstActiveStaffByName(_ context.Context) (*models.Staff, error) {
	if m.firstActive == nil {
		return nil, errNotFound
	}
	return m.firstActive, nil
}

func (m *mockRepo) GetCustomerByUserID(_ context.Context, userID uint) (*models.Customer, error) {
	if c, ok := m.customers[userID]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) GetOrCreateCustomer(
	_ context.Context,
	userID uint,
	name string,
	email string,
) (*models.Customer, error) {
	if c, ok := m.customers[userID]; ok {
		return c, nil
	}
	c := &models.Customer{ID: m.nextCustID, UserID: userID, Name: name}
	m.nextCustID++
	m.customers[userID] = c
	return c, nil
}

func (m *mockRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	b.ID = uint(len(m.bookings) + 1)
	m.bookings[b.ID] = b
	m.created = b
	return nil
}

func (m *mockRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	if b, ok := m.bookings[id]; ok {
		return b, nil
	}
	return nil, errNotFound
}

func (m *mockRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	m.updateCalls++
	m.bookings[b.ID] = b
	return nil
}

func (m *mockRepo) ListActiveIntervalsForDay(
	_ context.Context,
	_ uint,
	_ time.Time,
	_ time.Time,
) ([]domain.Interval, error) {
	m.intervalCalls++
	return m.intervals, nil
}

func (m *mockRepo) ListBookingsForCustomer(_ context.Context, customerID uint) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockRepo) ListBookingsForStaffDay(
	_ context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.StaffID == staffID && !b.StartTime.Before(dayStart) && b.StartTime.Before(dayEnd) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *mockRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

var _ domain.Repository = (*mockRepo)(nil)

// mockCache records day-level cache traffic.
type mockCache struct {
	data          map[string][]domain.Interval
	invalidations []string
}

func newMockCache() *mockCache {
	return &mockCache{data: map[string][]domain.Interval{}}
}

func cacheKey(staffID uint, day string) string {
	return fmt.Sprintf("%d:%s", staffID, day)
}

func (m *mockCache) GetDay(_ context.Context, staffID uint, day string) ([]domain.Interval, bool) {
	v, ok := m.data[cacheKey(staffID, day)]
	return v, ok
}

func (m *mockCache) SetDay(_ context.Context, staffID uint, day string, intervals []domain.Interval) {
	m.data[cacheKey(staffID, day)] = intervals
}

func (m *mockCache) Invalidate(_ context.Context, staffID uint, day string) {
	key := cacheKey(staffID, day)
	delete(m.data, key)
	m.invalidations = append(m.invalidations, key)
}

var _ AvailabilityCache = (*mockCache)(nil)
