package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/api/internal/application/dto"
	"github.com/biztime/api/internal/application/usecase"
	"github.com/biztime/api/internal/domain"
	"github.com/biztime/api/internal/domain/entity"
	"github.com/biztime/api/internal/testutil"
)

const dateLayout = "2006-01-02"

func newInvoiceUC(t *testing.T) (*usecase.InvoiceUseCase, *testutil.MemStore) {
	t.Helper()
	store := testutil.NewMemStore()
	require.NoError(t, store.Companies().Create(context.Background(), &entity.Company{
		Code: "apple", Name: "Apple Computer",
	}))
	return usecase.NewInvoiceUseCase(store.Invoices(), store), store
}

func TestInvoiceCreate_Defaults(t *testing.T) {
	uc, _ := newInvoiceUC(t)

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "apple",
		Amt:      decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.Invoice.ID)
	assert.Equal(t, "apple", out.Invoice.CompCode)
	assert.False(t, out.Invoice.Paid)
	assert.Nil(t, out.Invoice.PaidDate)
	assert.Equal(t, time.Now().Format(dateLayout), out.Invoice.AddDate)
}

func TestInvoiceCreate_UnknownCompany(t *testing.T) {
	uc, _ := newInvoiceUC(t)

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "nope",
		Amt:      decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrForeignKey)
}

func TestInvoiceCreate_Validation(t *testing.T) {
	uc, _ := newInvoiceUC(t)

	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{Amt: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing comp_code")

	_, err = uc.Create(context.Background(), dto.CreateInvoiceRequest{CompCode: "apple"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero amt")
}

// Paying an unpaid invoice stamps paid_date with the current date.
func TestInvoiceUpdate_PayTransition(t *testing.T) {
	uc, store := newInvoiceUC(t)
	id := store.SeedInvoice(entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: time.Now(),
	})

	out, err := uc.Update(context.Background(), id, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(10), Paid: true,
	})
	require.NoError(t, err)

	assert.True(t, out.Invoice.Paid)
	require.NotNil(t, out.Invoice.PaidDate)
	assert.Equal(t, time.Now().Format(dateLayout), *out.Invoice.PaidDate)
	assert.True(t, out.Invoice.Amt.Equal(decimal.NewFromInt(10)))
}

// Un-paying a paid invoice clears paid_date.
func TestInvoiceUpdate_UnpayTransition(t *testing.T) {
	uc, store := newInvoiceUC(t)
	paidAt := time.Now().AddDate(0, 0, -7)
	id := store.SeedInvoice(entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), Paid: true,
		AddDate: time.Now(), PaidDate: &paidAt,
	})

	out, err := uc.Update(context.Background(), id, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(10), Paid: false,
	})
	require.NoError(t, err)

	assert.False(t, out.Invoice.Paid)
	assert.Nil(t, out.Invoice.PaidDate)
}

// Updating an already-paid invoice without toggling paid keeps the original
// paid_date.
func TestInvoiceUpdate_NoTransitionKeepsPaidDate(t *testing.T) {
	uc, store := newInvoiceUC(t)
	paidAt := time.Now().AddDate(0, 0, -7)
	id := store.SeedInvoice(entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), Paid: true,
		AddDate: time.Now(), PaidDate: &paidAt,
	})

	out, err := uc.Update(context.Background(), id, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(20), Paid: true,
	})
	require.NoError(t, err)

	assert.True(t, out.Invoice.Paid)
	require.NotNil(t, out.Invoice.PaidDate)
	assert.Equal(t, paidAt.Format(dateLayout), *out.Invoice.PaidDate)
	assert.True(t, out.Invoice.Amt.Equal(decimal.NewFromInt(20)))
}

func TestInvoiceUpdate_NotFound(t *testing.T) {
	uc, _ := newInvoiceUC(t)

	_, err := uc.Update(context.Background(), 99, dto.UpdateInvoiceRequest{
		Amt: decimal.NewFromInt(10), Paid: true,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "no such invoice: 99")
}

func TestInvoiceGet_NestsCompany(t *testing.T) {
	uc, store := newInvoiceUC(t)
	id := store.SeedInvoice(entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: time.Now(),
	})

	out, err := uc.Get(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, out.Invoice.ID)
	assert.Equal(t, "apple", out.Invoice.Company.Code)
	assert.Equal(t, "Apple Computer", out.Invoice.Company.Name)
}

func TestInvoiceDelete_TwiceReportsNotFound(t *testing.T) {
	uc, store := newInvoiceUC(t)
	id := store.SeedInvoice(entity.Invoice{
		CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: time.Now(),
	})

	require.NoError(t, uc.Delete(context.Background(), id))
	assert.ErrorIs(t, uc.Delete(context.Background(), id), domain.ErrNotFound)
}
