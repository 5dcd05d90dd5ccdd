package repository

import (
	"context"

	"github.com/biztime/api/internal/domain/entity"
)

// InvoiceRepository is the persistence port for Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]entity.Invoice, error)

	// GetWithCompany joins the invoice with its owning company and fills
	// Invoice.Company. Returns domain.ErrNotFound when the id is unknown.
	GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, error)

	// GetForUpdate fetches the row and, inside a transaction, locks it until
	// commit so the paid_date computation cannot race a concurrent update.
	GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error)

	// IDsByCompany returns the ids of every invoice owned by the company.
	IDsByCompany(ctx context.Context, compCode string) ([]int64, error)

	// Create inserts comp_code and amt; the database assigns id, add_date and
	// the unpaid defaults, which are written back into inv.
	Create(ctx context.Context, inv *entity.Invoice) error

	Update(ctx context.Context, inv *entity.Invoice) error
	Delete(ctx context.Context, id int64) error
}
