package industry

type CreateIndustryRequest struct {
	Industry *string `json:"industry"`
}

type AssociateCompanyRequest struct {
	CompCode *string `json:"comp_code" binding:"required"`
}

type IndustrySummaryResponse struct {
	Industry     string   `json:"industry"`
	IndustryCode string   `json:"industry_code"`
	CompanyCodes []string `json:"company_codes"`
}

type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type AssociationResponse struct {
	IndustryCode string `json:"industry_code"`
	CompCode     string `json:"comp_code"`
}
