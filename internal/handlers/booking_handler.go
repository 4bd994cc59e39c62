package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	"github.com/piyushrajyadav/Nexusaloon/internal/dto"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/httpresp"
	"github.com/piyushrajyadav/Nexusaloon/internal/middleware"
	ucBooking "github.com/piyushrajyadav/Nexusaloon/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	listMineUC     *ucBooking.ListMyBookings
	cfg            *config.Config
}

func NewBookingHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listMineUC *ucBooking.ListMyBookings,
	cfg *config.Config,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		listMineUC:     listMineUC,
		cfg:            cfg,
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseDate(dateStr, h.cfg.Timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id is required.")
		return
	}

	var staffID uint
	if raw := c.Query("staff_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_staff_id", "Staff id must be numeric.")
			return
		}
		staffID = uint(id)
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date:      date,
		StaffID:   staffID,
		ServiceID: uint(serviceID),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ======================================================
// CREATE
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	StaffID   *uint  `json:"staff_id"` // null = any available
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	var staffID uint
	if req.StaffID != nil {
		staffID = *req.StaffID
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		UserEmail: email,
		ServiceID: req.ServiceID,
		StaffID:   staffID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking_id": b.ID, "status": b.Status})
}

// ======================================================
// CANCEL / LIST
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), uint(bookingID), userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking_id": b.ID, "status": b.Status})
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookings, err := h.listMineUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          b.ID,
			Date:        b.Date,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			ServiceName: b.Service.Name,
			StaffName:   b.Staff.Name,
		})
	}

	httpresp.List(c, out)
}
