package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	"github.com/piyushrajyadav/Nexusaloon/internal/dto"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/httpresp"
	"github.com/piyushrajyadav/Nexusaloon/internal/middleware"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
	ucBooking "github.com/piyushrajyadav/Nexusaloon/internal/usecase/booking"
)

// StaffHandler serves the appointment sheet of the authenticated staff
// member.
type StaffHandler struct {
	daySheetUC *ucBooking.GetStaffDaySheet
	cfg        *config.Config
}

func NewStaffHandler(daySheetUC *ucBooking.GetStaffDaySheet, cfg *config.Config) *StaffHandler {
	return &StaffHandler{daySheetUC: daySheetUC, cfg: cfg}
}

func (h *StaffHandler) DaySheet(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	date := timezone.NowIn(h.cfg.Timezone)
	if raw := c.Query("date"); raw != "" {
		parsed, err := parseDate(raw, h.cfg.Timezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
			return
		}
		date = parsed
	}

	bookings, err := h.daySheetUC.Execute(c.Request.Context(), userID, date)
	if err != nil {
		writeBusinessError(c, err)
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
			CustomerName: b.Customer.Name,
		})
	}

	httpresp.List(c, out)
}
