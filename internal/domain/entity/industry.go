package entity

// Industry is keyed by a slug code; Industry holds the human-readable label.
type Industry struct {
	Code     string
	Industry string
}

// CompanyIndustry records a company↔industry association (join table row).
type CompanyIndustry struct {
	CompCode     string
	IndustryCode string
}

// IndustryWithCompanies is the aggregated list projection: one row per
// industry with the codes of every associated company (possibly empty).
type IndustryWithCompanies struct {
	Industry
	Companies []string
}
