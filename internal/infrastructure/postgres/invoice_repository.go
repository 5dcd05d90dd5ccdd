package postgres

import (
	"context"
	"fmt"

	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements repository.InvoiceRepository over PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or a tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List returns every invoice (id and comp_code are all callers project).
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetWithCompany fetches an invoice joined with its owning company.
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices AS i
		INNER JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1`
	var inv entity.Invoice
	var comp entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
		&comp.Code, &comp.Name, &comp.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Company = &comp
	return &inv, nil
}

// GetForUpdate locks the invoice row until the surrounding transaction ends.
// Outside a transaction the lock is released immediately, so callers that care
// about the paid_date race must go through TxRunner.
func (r *InvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices WHERE id = $1
		FOR UPDATE`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invoice for update: %w", err)
	}
	return &inv, nil
}

// IDsByCompany returns the ids of all invoices owned by compCode.
func (r *InvoiceRepo) IDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserts the invoice and reads back the server-assigned columns.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	err := r.q.QueryRow(ctx, query, inv.CompCode, inv.Amt).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update writes amt, paid and paid_date in a single statement.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1`,
		inv.ID, inv.Amt, inv.Paid, inv.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an invoice by id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
