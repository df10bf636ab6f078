package domain

import "time"

// Client is a customer of the company. Every client is assigned to exactly
// one sales contact, who owns it for row-level authorization.
type Client struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FirstName      string    `gorm:"size:50;not null" json:"first_name"`
	LastName       string    `gorm:"size:50;not null" json:"last_name"`
	Email          string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string    `gorm:"size:20;not null" json:"phone"`
	CompanyName    string    `gorm:"size:100;not null" json:"company_name"`
	SalesContactID uint      `gorm:"not null" json:"sales_contact_id"`
	SalesContact   *User     `gorm:"foreignKey:SalesContactID" json:"sales_contact,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
