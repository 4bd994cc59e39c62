package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/dto"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/booking"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/httpresp"
	"github.com/piyushrajyadav/Nexusaloon/internal/middleware"
	ucBooking "github.com/piyushrajyadav/Nexusaloon/internal/usecase/booking"
)

type AdminBookingHandler struct {
	repo           domain.Repository
	updateStatusUC *ucBooking.UpdateBookingStatus
}

func NewAdminBookingHandler(
	repo domain.Repository,
	updateStatusUC *ucBooking.UpdateBookingStatus,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		repo:           repo,
		updateStatusUC: updateStatusUC,
	}
}

func (h *AdminBookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.ListBookings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Date:         b.Date,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
			Status:       b.Status,
			ServiceName:  b.Service.Name,
			StaffName:    b.Staff.Name,
			CustomerName: b.Customer.Name,
		})
	}

	httpresp.List(c, out)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminBookingHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.updateStatusUC.Execute(c.Request.Context(), uint(bookingID), req.Status, actorID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking_id": b.ID, "status": b.Status})
}
