package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/httpresp"
	"github.com/piyushrajyadav/Nexusaloon/internal/middleware"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
	ucInvoice "github.com/piyushrajyadav/Nexusaloon/internal/usecase/invoice"
)

type InvoiceHandler struct {
	generateUC     *ucInvoice.GenerateInvoice
	updateStatusUC *ucInvoice.UpdateInvoiceStatus
	listUC         *ucInvoice.ListInvoices
	salesReportUC  *ucInvoice.SalesReport
	cfg            *config.Config
}

func NewInvoiceHandler(
	generateUC *ucInvoice.GenerateInvoice,
	updateStatusUC *ucInvoice.UpdateInvoiceStatus,
	listUC *ucInvoice.ListInvoices,
	salesReportUC *ucInvoice.SalesReport,
	cfg *config.Config,
) *InvoiceHandler {
	return &InvoiceHandler{
		generateUC:     generateUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
		salesReportUC:  salesReportUC,
		cfg:            cfg,
	}
}

func (h *InvoiceHandler) Generate(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be numeric.")
		return
	}

	inv, err := h.generateUC.Execute(c.Request.Context(), uint(bookingID), actorID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"invoice_id":     inv.ID,
		"invoice_number": inv.InvoiceNumber,
		"total_amount":   inv.TotalAmount,
	})
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	invoiceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_invoice_id", "Invoice id must be numeric.")
		return
	}

	var req UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	inv, err := h.updateStatusUC.Execute(c.Request.Context(), uint(invoiceID), req.Status, actorID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice_id": inv.ID, "status": inv.Status})
}

func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_invoices", "Could not load invoices.")
		return
	}

	httpresp.List(c, invoices)
}

func (h *InvoiceHandler) SalesReport(c *gin.Context) {
	now := timezone.NowIn(h.cfg.Timezone)

	from := now.AddDate(0, -1, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDate(raw, h.cfg.Timezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "from must be YYYY-MM-DD.")
			return
		}
		from = parsed
	}

	to := now
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDate(raw, h.cfg.Timezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "to must be YYYY-MM-DD.")
			return
		}
		// inclusive end of day
		to = parsed.AddDate(0, 0, 1)
	}

	rows, err := h.salesReportUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Could not build the sales report.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows, "total": len(rows)})
}
