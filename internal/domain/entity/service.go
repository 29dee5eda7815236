package entity

// Service is a catalog entry with a fixed unit price and VAT rate. The catalog
// is seeded on first run and has no edit surface; price changes only affect
// future bookings because bookings copy the price at submit time.
type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	VATRate     float64 `gorm:"not null;column:vat_rate" json:"vat_rate"`
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
