package industry

import "github.com/lib/pq"

type Industry struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Code     string `gorm:"type:text;not null;uniqueIndex"`
	Industry string `gorm:"type:text;not null"`
}

func (Industry) TableName() string {
	return "industries"
}

type CompanyIndustry struct {
	IndustryID  int64  `gorm:"primaryKey"`
	CompanyCode string `gorm:"type:text;primaryKey"`
}

func (CompanyIndustry) TableName() string {
	return "companies_industries"
}

// IndustryCompanies is one row of the industry listing aggregate.
type IndustryCompanies struct {
	Industry     string
	IndustryCode string
	CompanyCodes pq.StringArray `gorm:"type:text[]"`
}
