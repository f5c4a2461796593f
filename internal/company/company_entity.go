package company

type Company struct {
	Code        string  `gorm:"type:text;primaryKey"`
	Name        string  `gorm:"type:text;not null;unique"`
	Description *string `gorm:"type:text"`
}

func (Company) TableName() string {
	return "companies"
}

// CompanyFields carries writable columns as nullable values so a field the
// client left out reaches the NOT NULL constraints as SQL NULL.
type CompanyFields struct {
	Code        *string
	Name        *string
	Description *string
}
