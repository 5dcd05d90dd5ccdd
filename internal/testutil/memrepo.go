// Package testutil provides in-memory implementations of the repository ports
// for use-case and handler tests. Behavior mirrors the PostgreSQL adapters:
// lookups return domain.ErrNotFound, duplicate keys return domain.ErrDuplicate
// and dangling references return domain.ErrForeignKey.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
)

// MemStore holds the shared tables. Use NewMemStore and the *Repo accessors.
type MemStore struct {
	companies     map[string]entity.Company
	invoices      map[int64]entity.Invoice
	nextInvoiceID int64
	industries    map[string]entity.Industry
	associations  map[string][]string // comp_code -> industry codes
}

// NewMemStore builds an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		companies:     make(map[string]entity.Company),
		invoices:      make(map[int64]entity.Invoice),
		nextInvoiceID: 1,
		industries:    make(map[string]entity.Industry),
		associations:  make(map[string][]string),
	}
}

// Companies returns the company port over the store.
func (s *MemStore) Companies() repository.CompanyRepository { return &memCompanyRepo{s} }

// Invoices returns the invoice port over the store.
func (s *MemStore) Invoices() repository.InvoiceRepository { return &memInvoiceRepo{s} }

// Industries returns the industry port over the store.
func (s *MemStore) Industries() repository.IndustryRepository { return &memIndustryRepo{s} }

// InTx satisfies usecase.TxRunner; there is no transaction to manage in
// memory, the callback just runs against the same store.
func (s *MemStore) InTx(ctx context.Context, fn func(invoices repository.InvoiceRepository) error) error {
	return fn(s.Invoices())
}

// SeedInvoice inserts an invoice directly, bypassing creation defaults, so
// tests can set up paid rows with historical paid dates.
func (s *MemStore) SeedInvoice(inv entity.Invoice) int64 {
	inv.ID = s.nextInvoiceID
	s.nextInvoiceID++
	s.invoices[inv.ID] = inv
	return inv.ID
}

type memCompanyRepo struct{ s *MemStore }

func (r *memCompanyRepo) List(ctx context.Context) ([]entity.Company, error) {
	list := make([]entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *memCompanyRepo) Get(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; ok {
		return domain.ErrDuplicate
	}
	r.s.companies[company.Code] = *company
	return nil
}

func (r *memCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; !ok {
		return domain.ErrNotFound
	}
	r.s.companies[company.Code] = *company
	return nil
}

func (r *memCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.s.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, code)
	// cascade, mirroring the ON DELETE CASCADE constraints
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			delete(r.s.invoices, id)
		}
	}
	delete(r.s.associations, code)
	return nil
}

type memInvoiceRepo struct{ s *MemStore }

func (r *memInvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	list := make([]entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		list = append(list, inv)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memInvoiceRepo) GetWithCompany(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	company, ok := r.s.companies[inv.CompCode]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inv.Company = &company
	return &inv, nil
}

func (r *memInvoiceRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

func (r *memInvoiceRepo) IDsByCompany(ctx context.Context, compCode string) ([]int64, error) {
	ids := make([]int64, 0)
	for id, inv := range r.s.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *memInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if _, ok := r.s.companies[inv.CompCode]; !ok {
		return domain.ErrForeignKey
	}
	inv.ID = r.s.nextInvoiceID
	r.s.nextInvoiceID++
	inv.Paid = false
	inv.AddDate = time.Now()
	inv.PaidDate = nil
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *memInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	if _, ok := r.s.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *memInvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

type memIndustryRepo struct{ s *MemStore }

func (r *memIndustryRepo) ListWithCompanies(ctx context.Context) ([]entity.IndustryWithCompanies, error) {
	list := make([]entity.IndustryWithCompanies, 0, len(r.s.industries))
	for _, ind := range r.s.industries {
		item := entity.IndustryWithCompanies{Industry: ind, Companies: []string{}}
		for compCode, codes := range r.s.associations {
			for _, code := range codes {
				if code == ind.Code {
					item.Companies = append(item.Companies, compCode)
				}
			}
		}
		sort.Strings(item.Companies)
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

func (r *memIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	if _, ok := r.s.industries[industry.Code]; ok {
		return domain.ErrDuplicate
	}
	r.s.industries[industry.Code] = *industry
	return nil
}

func (r *memIndustryRepo) Associate(ctx context.Context, compCode, industryCode string) error {
	if _, ok := r.s.companies[compCode]; !ok {
		return domain.ErrForeignKey
	}
	if _, ok := r.s.industries[industryCode]; !ok {
		return domain.ErrForeignKey
	}
	for _, code := range r.s.associations[compCode] {
		if code == industryCode {
			return domain.ErrDuplicate
		}
	}
	r.s.associations[compCode] = append(r.s.associations[compCode], industryCode)
	return nil
}

func (r *memIndustryRepo) LabelsByCompany(ctx context.Context, compCode string) ([]string, error) {
	labels := make([]string, 0)
	for _, code := range r.s.associations[compCode] {
		if ind, ok := r.s.industries[code]; ok {
			labels = append(labels, ind.Industry)
		}
	}
	sort.Strings(labels)
	return labels, nil
}
