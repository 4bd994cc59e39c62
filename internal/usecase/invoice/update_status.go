package invoice

import (
	"context"

	"github.com/piyushrajyadav/Nexusaloon/internal/audit"
	"github.com/piyushrajyadav/Nexusaloon/internal/config"
	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
	"github.com/piyushrajyadav/Nexusaloon/internal/timezone"
)

type UpdateInvoiceStatus struct {
	repo  domain.Repository
	audit *audit.Logger
	cfg   *config.Config
}

func NewUpdateInvoiceStatus(
	repo domain.Repository,
	auditLogger *audit.Logger,
	cfg *config.Config,
) *UpdateInvoiceStatus {
	return &UpdateInvoiceStatus{
		repo:  repo,
		audit: auditLogger,
		cfg:   cfg,
	}
}

// Execute records a payment-state change. Setting the status an invoice
// already has is a no-op success, so re-marking a PAID invoice is safe to
// retry.
func (uc *UpdateInvoiceStatus) Execute(
	ctx context.Context,
	invoiceID uint,
	next string,
	actorUserID uint,
) (*models.Invoice, error) {

	inv, err := uc.repo.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invoice_not_found")
	}

	status := domain.Status(next)
	if !domain.Valid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if inv.Status == string(status) {
		return inv, nil
	}

	inv.Status = string(status)
	if status == domain.StatusPaid && inv.PaidAt == nil {
		now := timezone.NowIn(uc.cfg.Timezone)
		inv.PaidAt = &now
	}

	if err := uc.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Log(&actorUserID, "invoice_status_updated", "invoice", &inv.ID, map[string]any{
			"status": next,
		})
	}

	return inv, nil
}
