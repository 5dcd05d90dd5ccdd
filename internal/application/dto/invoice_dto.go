package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest is the body for POST /invoices.
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest is the body for PUT /invoices/:id. The paid flag drives
// the paid_date transition.
type UpdateInvoiceRequest struct {
	Amt  decimal.Decimal `json:"amt"`
	Paid bool            `json:"paid"`
}

// InvoiceSummary is the list projection of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse is a full invoice row. Dates use YYYY-MM-DD; PaidDate is
// null while the invoice is unpaid.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetail is the single-invoice read with the owning company nested as a
// sub-object instead of a comp_code reference.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceListResponse wraps GET /invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceEnvelope wraps create/update responses.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps GET /invoices/:id.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetail `json:"invoice"`
}
