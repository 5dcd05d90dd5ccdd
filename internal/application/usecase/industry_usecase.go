package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/biztime/api/internal/application/dto"
	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
	"github.com/biztime/api/internal/domain/slug"
)

// IndustryUseCase implements the industry operations.
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase builds the use case with its persistence port.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List returns every industry with its associated company codes.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	list, err := uc.industries.ListWithCompanies(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryWithCompanies, 0, len(list))
	for _, ind := range list {
		companies := ind.Companies
		if companies == nil {
			companies = []string{}
		}
		items = append(items, dto.IndustryWithCompanies{
			IndustryResponse: dto.IndustryResponse{Code: ind.Code, Industry: ind.Industry.Industry},
			Companies:        companies,
		})
	}
	return &dto.IndustryListResponse{Industries: items}, nil
}

// Create normalizes the caller-supplied code to a slug and inserts the row.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryEnvelope, error) {
	if in.Industry == "" {
		return nil, invalidf("industry is required")
	}
	code := slug.Make(in.Code)
	if code == "" {
		return nil, invalidf("code must contain letters or digits")
	}
	industry := &entity.Industry{Code: code, Industry: in.Industry}
	if err := uc.industries.Create(ctx, industry); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("industry already exists: %s: %w", code, domain.ErrDuplicate)
		}
		return nil, err
	}
	return &dto.IndustryEnvelope{
		Industry: dto.IndustryResponse{Code: industry.Code, Industry: industry.Industry},
	}, nil
}
