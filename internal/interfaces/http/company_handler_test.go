package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/api/internal/application/dto"
	"github.com/biztime/api/internal/domain/entity"
)

func TestCompanyList(t *testing.T) {
	app, store := newApp(t)
	ctx := context.Background()
	require.NoError(t, store.Companies().Create(ctx, &entity.Company{Code: "apple", Name: "Apple Computer"}))
	require.NoError(t, store.Companies().Create(ctx, &entity.Company{Code: "ibm", Name: "IBM"}))

	resp := doJSON(t, app, http.MethodGet, "/companies", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.CompanyListResponse](t, resp)
	assert.Equal(t, []dto.CompanySummary{
		{Code: "apple", Name: "Apple Computer"},
		{Code: "ibm", Name: "IBM"},
	}, body.Companies)
}

func TestCompanyGet_WithRelations(t *testing.T) {
	app, store := newApp(t)
	ctx := context.Background()
	desc := "Maker of OSX."
	require.NoError(t, store.Companies().Create(ctx, &entity.Company{Code: "apple", Name: "Apple Computer", Description: &desc}))
	id := store.SeedInvoice(entity.Invoice{CompCode: "apple", Amt: decimal.NewFromInt(100), AddDate: time.Now()})
	require.NoError(t, store.Industries().Create(ctx, &entity.Industry{Code: "tech", Industry: "Technology"}))
	require.NoError(t, store.Industries().Associate(ctx, "apple", "tech"))

	resp := doJSON(t, app, http.MethodGet, "/companies/apple", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.CompanyDetailEnvelope](t, resp)
	assert.Equal(t, "apple", body.Company.Code)
	assert.Equal(t, "Apple Computer", body.Company.Name)
	require.NotNil(t, body.Company.Description)
	assert.Equal(t, desc, *body.Company.Description)
	assert.ElementsMatch(t, []int64{id}, body.Company.Invoices)
	assert.ElementsMatch(t, []string{"Technology"}, body.Company.Industries)
}

func TestCompanyGet_NotFound(t *testing.T) {
	app, _ := newApp(t)

	resp := doJSON(t, app, http.MethodGet, "/companies/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Contains(t, body.Message, "ghost")
}

func TestCompanyCreate_NormalizesCodeAndRoundTrips(t *testing.T) {
	app, _ := newApp(t)

	resp := doJSON(t, app, http.MethodPost, "/companies", dto.CreateCompanyRequest{
		Code: "Acme Corp!", Name: "Acme Corporation",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[dto.CompanyEnvelope](t, resp)
	assert.Equal(t, "acmecorp", created.Company.Code)

	resp = doJSON(t, app, http.MethodGet, "/companies/acmecorp", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody[dto.CompanyDetailEnvelope](t, resp)
	assert.Equal(t, created.Company, fetched.Company.CompanyResponse)
}

func TestCompanyCreate_DuplicateConflicts(t *testing.T) {
	app, _ := newApp(t)

	resp := doJSON(t, app, http.MethodPost, "/companies", dto.CreateCompanyRequest{Code: "apple", Name: "Apple"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/companies", dto.CreateCompanyRequest{Code: "apple", Name: "Apple"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "DUPLICATE", body.Code)
}

func TestCompanyUpdate(t *testing.T) {
	app, store := newApp(t)
	require.NoError(t, store.Companies().Create(context.Background(), &entity.Company{Code: "apple", Name: "Apple"}))

	resp := doJSON(t, app, http.MethodPut, "/companies/apple", dto.UpdateCompanyRequest{Name: "Apple Inc."})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.CompanyEnvelope](t, resp)
	assert.Equal(t, "Apple Inc.", body.Company.Name)

	resp = doJSON(t, app, http.MethodPut, "/companies/ghost", dto.UpdateCompanyRequest{Name: "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCompanyDelete_TwiceIs404(t *testing.T) {
	app, store := newApp(t)
	require.NoError(t, store.Companies().Create(context.Background(), &entity.Company{Code: "apple", Name: "Apple"}))

	resp := doJSON(t, app, http.MethodDelete, "/companies/apple", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[dto.StatusResponse](t, resp)
	assert.Equal(t, "Deleted", body.Status)

	resp = doJSON(t, app, http.MethodDelete, "/companies/apple", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCompanyAssociateIndustry(t *testing.T) {
	app, store := newApp(t)
	ctx := context.Background()
	require.NoError(t, store.Companies().Create(ctx, &entity.Company{Code: "apple", Name: "Apple"}))
	require.NoError(t, store.Industries().Create(ctx, &entity.Industry{Code: "tech", Industry: "Technology"}))

	resp := doJSON(t, app, http.MethodPost, "/companies/apple/industries", dto.AssociateIndustryRequest{IndustryCode: "tech"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody[dto.CompanyIndustryEnvelope](t, resp)
	assert.Equal(t, dto.CompanyIndustryResponse{CompCode: "apple", IndustryCode: "tech"}, body.CompanyIndustry)

	// unknown industry is a bad reference, not a server error
	resp = doJSON(t, app, http.MethodPost, "/companies/apple/industries", dto.AssociateIndustryRequest{IndustryCode: "ghost"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// missing industry_code fails validation
	resp = doJSON(t, app, http.MethodPost, "/companies/apple/industries", dto.AssociateIndustryRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
