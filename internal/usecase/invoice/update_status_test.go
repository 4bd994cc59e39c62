package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

func seedInvoice(repo *mockInvoiceRepo, status string) *models.Invoice {
	inv := &models.Invoice{
		ID:        1,
		BookingID: 1,
		Status:    status,
	}
	repo.invoices[inv.ID] = inv
	return inv
}

func TestUpdateInvoiceStatus_MarkPaidStampsPaidAt(t *testing.T) {
	repo := newMockInvoiceRepo()
	seedInvoice(repo, string(domain.StatusPending))

	uc := NewUpdateInvoiceStatus(repo, nil, testConfig())

	inv, err := uc.Execute(context.Background(), 1, "PAID", 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPaid), inv.Status)
	assert.NotNil(t, inv.PaidAt)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdateInvoiceStatus_SameStatusIsNoOp(t *testing.T) {
	repo := newMockInvoiceRepo()
	seedInvoice(repo, string(domain.StatusPaid))

	uc := NewUpdateInvoiceStatus(repo, nil, testConfig())

	inv, err := uc.Execute(context.Background(), 1, "PAID", 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPaid), inv.Status)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateInvoiceStatus_UnknownStatus(t *testing.T) {
	repo := newMockInvoiceRepo()
	seedInvoice(repo, string(domain.StatusPending))

	uc := NewUpdateInvoiceStatus(repo, nil, testConfig())

	_, err := uc.Execute(context.Background(), 1, "VOID", 10)

	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateInvoiceStatus_NotFound(t *testing.T) {
	repo := newMockInvoiceRepo()

	uc := NewUpdateInvoiceStatus(repo, nil, testConfig())

	_, err := uc.Execute(context.Background(), 404, "PAID", 10)

	assert.True(t, httperr.IsBusiness(err, "invoice_not_found"))
}
