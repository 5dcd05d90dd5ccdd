package dto

// CreateCompanyRequest is the body for POST /companies. Code is normalized to
// a slug before insertion; the caller-supplied value is never used verbatim.
type CreateCompanyRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCompanyRequest is the body for PUT /companies/:code.
type UpdateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// AssociateIndustryRequest is the body for POST /companies/:code/industries.
type AssociateIndustryRequest struct {
	IndustryCode string `json:"industry_code"`
}

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse is a full company row.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetail is the single-company read: the row plus the ids of its
// invoices and the labels of its industries.
type CompanyDetail struct {
	CompanyResponse
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industries"`
}

// CompanyListResponse wraps GET /companies.
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyEnvelope wraps create/update responses.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope wraps GET /companies/:code.
type CompanyDetailEnvelope struct {
	Company CompanyDetail `json:"company"`
}

// CompanyIndustryResponse is a company↔industry association row.
type CompanyIndustryResponse struct {
	CompCode     string `json:"comp_code"`
	IndustryCode string `json:"industry_code"`
}

// CompanyIndustryEnvelope wraps POST /companies/:code/industries.
type CompanyIndustryEnvelope struct {
	CompanyIndustry CompanyIndustryResponse `json:"company_industry"`
}
