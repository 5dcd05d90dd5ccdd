package dto

// CreateIndustryRequest is the body for POST /industries. Code is normalized
// to a slug before insertion.
type CreateIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryResponse is an industry row.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryWithCompanies is the list projection: the industry plus the codes of
// its associated companies (empty array when there are none).
type IndustryWithCompanies struct {
	IndustryResponse
	Companies []string `json:"companies"`
}

// IndustryListResponse wraps GET /industries.
type IndustryListResponse struct {
	Industries []IndustryWithCompanies `json:"industries"`
}

// IndustryEnvelope wraps POST /industries.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}
