package entity

import "time"

// Vehicle belongs to exactly one customer. The registration mark is stored
// uppercased; mileage is nil when the submitted value was not a plain integer.
type Vehicle struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	VRM        string    `gorm:"size:20;not null;column:vrm" json:"vrm"`
	Make       string    `gorm:"size:100" json:"make"`
	Model      string    `gorm:"size:100" json:"model"`
	Mileage    *int      `json:"mileage,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// TableName returns the table name for the Vehicle model
func (Vehicle) TableName() string {
	return "vehicles"
}
