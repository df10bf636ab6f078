package domain

import "time"

// Event is a scheduled engagement organized for a signed contract. The
// support contact is optional: an event stays unassigned until a GESTION
// user assigns a SUPPORT user to it.
type Event struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:100;not null" json:"name"`
	ContractID       uint      `gorm:"not null" json:"contract_id"`
	Contract         *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	EventStart       time.Time `gorm:"not null" json:"event_start"`
	EventEnd         time.Time `gorm:"not null" json:"event_end"`
	Location         string    `gorm:"size:255;not null" json:"location"`
	Attendees        int       `gorm:"not null" json:"attendees"`
	Notes            string    `gorm:"type:text" json:"notes,omitempty"`
	SupportContactID *uint     `json:"support_contact_id,omitempty"`
	SupportContact   *User     `gorm:"foreignKey:SupportContactID" json:"support_contact,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// IsAssigned reports whether a support contact has been assigned.
func (e *Event) IsAssigned() bool {
	return e.SupportContactID != nil
}
