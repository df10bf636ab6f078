package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract is a sales agreement attached to a client. Amounts are exact
// decimals (numeric(10,2)); RemainingAmount only ever decreases, via payments.
// The contract's effective owner is its client's sales contact.
type Contract struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ClientID        uint            `gorm:"not null" json:"client_id"`
	Client          *Client         `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"remaining_amount"`
	IsSigned        bool            `gorm:"not null;default:false" json:"is_signed"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsPaid reports whether nothing remains to be paid.
func (c *Contract) IsPaid() bool {
	return c.RemainingAmount.IsZero()
}
