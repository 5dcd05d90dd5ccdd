package postgres

import (
	"context"
	"fmt"

	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implements repository.IndustryRepository over PostgreSQL.
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository builds the adapter. Pass a pool or a tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// ListWithCompanies aggregates the association table into one row per
// industry. ARRAY_REMOVE strips the NULL a LEFT JOIN produces for industries
// without companies, so those aggregate to an empty array.
func (r *IndustryRepo) ListWithCompanies(ctx context.Context) ([]entity.IndustryWithCompanies, error) {
	query := `
		SELECT i.code, i.industry, ARRAY_REMOVE(ARRAY_AGG(ci.comp_code), NULL)
		FROM industries AS i
		LEFT JOIN company_industries AS ci ON i.code = ci.industry_code
		GROUP BY i.code, i.industry
		ORDER BY i.code`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []entity.IndustryWithCompanies
	for rows.Next() {
		item := entity.IndustryWithCompanies{Companies: []string{}}
		if err := rows.Scan(&item.Code, &item.Industry.Industry, &item.Companies); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Create inserts a new industry.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2)`,
		industry.Code, industry.Industry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// Associate inserts a company↔industry row.
func (r *IndustryRepo) Associate(ctx context.Context, compCode, industryCode string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO company_industries (comp_code, industry_code) VALUES ($1, $2)`,
		compCode, industryCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert company industry: %w", err)
	}
	return nil
}

// LabelsByCompany returns the labels of the industries joined to compCode.
func (r *IndustryRepo) LabelsByCompany(ctx context.Context, compCode string) ([]string, error) {
	query := `
		SELECT i.industry
		FROM industries AS i
		INNER JOIN company_industries AS ci ON i.code = ci.industry_code
		WHERE ci.comp_code = $1
		ORDER BY i.industry`
	rows, err := r.q.Query(ctx, query, compCode)
	if err != nil {
		return nil, fmt.Errorf("list industry labels: %w", err)
	}
	defer rows.Close()

	labels := make([]string, 0)
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan industry label: %w", err)
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}
