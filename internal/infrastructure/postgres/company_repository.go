package postgres

import (
	"context"
	"fmt"

	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements repository.CompanyRepository over PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter. Pass a pool or a tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List returns every company.
func (r *CompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	rows, err := r.q.Query(ctx, `SELECT code, name, description FROM companies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Get fetches a company by code.
func (r *CompanyRepo) Get(ctx context.Context, code string) (*entity.Company, error) {
	var c entity.Company
	err := r.q.QueryRow(ctx,
		`SELECT code, name, description FROM companies WHERE code = $1`, code,
	).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3)`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// Update rewrites name and description; the code never changes.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE companies SET name = $2, description = $3 WHERE code = $1`,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a company; invoices and associations go with it via cascade.
func (r *CompanyRepo) Delete(ctx context.Context, code string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
