package invoice

import (
	"context"

	domain "github.com/piyushrajyadav/Nexusaloon/internal/domain/invoice"
	"github.com/piyushrajyadav/Nexusaloon/internal/models"
)

type ListInvoices struct {
	repo domain.Repository
}

func NewListInvoices(repo domain.Repository) *ListInvoices {
	return &ListInvoices{repo: repo}
}

func (uc *ListInvoices) Execute(ctx context.Context) ([]models.Invoice, error) {
	return uc.repo.ListInvoices(ctx)
}
