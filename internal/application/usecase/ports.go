package usecase

import (
	"context"

	"github.com/biztime/api/internal/domain/repository"
)

// TxRunner executes fn inside a single database transaction with an invoice
// repository bound to it. The invoice update depends on this to lock the row
// between reading the current paid flag and writing the new paid_date.
type TxRunner interface {
	InTx(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error
}
