package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
)

// writeBusinessError maps business error codes onto HTTP responses. Anything
// that is not a business error is a storage/internal failure: logged, and
// answered with a generic message so implementation detail never leaks.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		log.Println("internal error:", err)
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case "service_not_found", "staff_not_found", "booking_not_found", "invoice_not_found":
		httperr.NotFound(c, code, "The requested resource was not found.")
	case "unauthorized":
		httperr.Forbidden(c, code, "You do not own this resource.")
	case "time_conflict":
		httperr.Conflict(c, code, "The selected time is no longer available.")
	case "invoice_already_exists":
		httperr.Conflict(c, code, "An invoice already exists for this booking.")
	case "no_staff_available":
		httperr.Conflict(c, code, "No active staff is available.")
	default:
		// validation-class failures: invalid_state, invalid_status,
		// invalid_date_or_time, outside_business_hours, invalid_line_item
		httperr.BadRequest(c, code, "The request could not be processed.")
	}
}
