package repository

import (
	"context"

	"github.com/biztime/api/internal/domain/entity"
)

// IndustryRepository is the persistence port for Industry and the
// company↔industry association.
type IndustryRepository interface {
	// ListWithCompanies returns exactly one row per industry with the codes of
	// its associated companies; industries without associations get an empty
	// slice, never nil.
	ListWithCompanies(ctx context.Context) ([]entity.IndustryWithCompanies, error)

	Create(ctx context.Context, industry *entity.Industry) error

	// Associate links an industry to a company. Returns domain.ErrForeignKey
	// when either code is unknown and domain.ErrDuplicate when the pair
	// already exists.
	Associate(ctx context.Context, compCode, industryCode string) error

	// LabelsByCompany returns the labels of every industry associated with the
	// company.
	LabelsByCompany(ctx context.Context, compCode string) ([]string, error)
}
