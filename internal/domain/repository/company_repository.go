package repository

import (
	"context"

	"github.com/biztime/api/internal/domain/entity"
)

// CompanyRepository is the persistence port for Company. Implementations live
// in infrastructure. Lookups return domain.ErrNotFound when no row matches;
// Update and Delete return domain.ErrNotFound when zero rows were affected.
type CompanyRepository interface {
	List(ctx context.Context) ([]entity.Company, error)
	Get(ctx context.Context, code string) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, code string) error
}
