package entity

import "time"

// Customer represents the person booking a vehicle in for work. Customers are
// created as part of a booking submission and never edited afterwards.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Vehicles []Vehicle `gorm:"foreignKey:CustomerID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:CustomerID" json:"-"`
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
