package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/biztime/api/internal/application/dto"
	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// InvoiceUseCase implements the invoice operations, including the
// paid/paid_date state transition on update.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	tx       TxRunner
}

// NewInvoiceUseCase builds the use case with its persistence port and the
// transaction runner used by Update.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, tx TxRunner) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, tx: tx}
}

// List returns every invoice projected to {id, comp_code}.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get returns the invoice with its owning company nested as a sub-object.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailEnvelope, error) {
	inv, err := uc.invoices.GetWithCompany(ctx, id)
	if err != nil {
		return nil, resourceErr(err, "invoice", strconv.FormatInt(id, 10))
	}
	detail := dto.InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatDate(inv.PaidDate),
		Company:  companyToResponse(inv.Company),
	}
	return &dto.InvoiceDetailEnvelope{Invoice: detail}, nil
}

// Create inserts an unpaid invoice; the database assigns id and add_date.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if in.CompCode == "" {
		return nil, invalidf("comp_code is required")
	}
	if !in.Amt.IsPositive() {
		return nil, invalidf("amt must be positive")
	}
	inv := &entity.Invoice{CompCode: in.CompCode, Amt: in.Amt}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		if errors.Is(err, domain.ErrForeignKey) {
			return nil, fmt.Errorf("no such company: %s: %w", in.CompCode, domain.ErrForeignKey)
		}
		return nil, err
	}
	return &dto.InvoiceEnvelope{Invoice: invoiceToResponse(inv)}, nil
}

// Update sets amt and paid, deriving paid_date from the paid transition:
// unpaid→paid stamps today, paid→unpaid clears the date, and an unchanged
// flag keeps the existing value. The whole read-modify-write runs in one
// transaction with the row locked, so concurrent updates serialize instead of
// losing writes.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	if !in.Amt.IsPositive() {
		return nil, invalidf("amt must be positive")
	}
	var out *dto.InvoiceEnvelope
	err := uc.tx.InTx(ctx, func(invoices repository.InvoiceRepository) error {
		inv, err := invoices.GetForUpdate(ctx, id)
		if err != nil {
			return resourceErr(err, "invoice", strconv.FormatInt(id, 10))
		}
		switch {
		case in.Paid && !inv.Paid:
			now := time.Now()
			inv.PaidDate = &now
		case !in.Paid && inv.Paid:
			inv.PaidDate = nil
		}
		inv.Paid = in.Paid
		inv.Amt = in.Amt
		if err := invoices.Update(ctx, inv); err != nil {
			return err
		}
		out = &dto.InvoiceEnvelope{Invoice: invoiceToResponse(inv)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the invoice matching id.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return resourceErr(err, "invoice", strconv.FormatInt(id, 10))
	}
	return nil
}

func invoiceToResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(dateLayout),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
