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

// CompanyUseCase implements the company operations. The single-company read
// fans out to the invoice and industry ports for the nested projections.
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
}

// NewCompanyUseCase builds the use case with its persistence ports.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices, industries: industries}
}

// List returns every company projected to {code, name}.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get returns the company with the ids of its invoices and the labels of its
// industries attached.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailEnvelope, error) {
	company, err := uc.companies.Get(ctx, code)
	if err != nil {
		return nil, resourceErr(err, "company", code)
	}
	ids, err := uc.invoices.IDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	labels, err := uc.industries.LabelsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	detail := dto.CompanyDetail{
		CompanyResponse: companyToResponse(company),
		Invoices:        ids,
		Industries:      labels,
	}
	if detail.Invoices == nil {
		detail.Invoices = []int64{}
	}
	if detail.Industries == nil {
		detail.Industries = []string{}
	}
	return &dto.CompanyDetailEnvelope{Company: detail}, nil
}

// Create normalizes the caller-supplied code to a slug and inserts the row.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyEnvelope, error) {
	if in.Name == "" {
		return nil, invalidf("name is required")
	}
	code := slug.Make(in.Code)
	if code == "" {
		return nil, invalidf("code must contain letters or digits")
	}
	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.companies.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("company already exists: %s: %w", code, domain.ErrDuplicate)
		}
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Update rewrites name and description of the company matching code.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyEnvelope, error) {
	if in.Name == "" {
		return nil, invalidf("name is required")
	}
	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, resourceErr(err, "company", code)
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Delete removes the company matching code.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	if err := uc.companies.Delete(ctx, code); err != nil {
		return resourceErr(err, "company", code)
	}
	return nil
}

// AssociateIndustry links an industry to the company.
func (uc *CompanyUseCase) AssociateIndustry(ctx context.Context, code, industryCode string) (*dto.CompanyIndustryEnvelope, error) {
	if industryCode == "" {
		return nil, invalidf("industry_code is required")
	}
	if err := uc.industries.Associate(ctx, code, industryCode); err != nil {
		switch {
		case errors.Is(err, domain.ErrForeignKey):
			return nil, fmt.Errorf("unknown company %s or industry %s: %w", code, industryCode, domain.ErrForeignKey)
		case errors.Is(err, domain.ErrDuplicate):
			return nil, fmt.Errorf("association already exists: %s/%s: %w", code, industryCode, domain.ErrDuplicate)
		}
		return nil, err
	}
	return &dto.CompanyIndustryEnvelope{
		CompanyIndustry: dto.CompanyIndustryResponse{CompCode: code, IndustryCode: industryCode},
	}, nil
}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}
