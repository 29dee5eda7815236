package entity

// Setting is one key/value pair of company configuration shown on invoices
// (company details, bank details, payment terms). Seeded on first run.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
