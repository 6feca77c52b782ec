package models

import (
	"time"

	"github.com/google/uuid"
)

type Scheduling struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	// CustomerID is a weak reference used for autofill/lookup only. It is
	// never enforced as a foreign key and deleting the customer leaves it
	// dangling on purpose.
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customerId,omitempty"`
	Customer   *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	CustomerName string    `gorm:"not null" json:"customerName"`
	SessionType  string    `gorm:"not null" json:"sessionType"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	Observacao   string    `json:"observacao,omitempty"`
	Indicacao    string    `json:"indicacao,omitempty"`

	PaymentStatus string   `gorm:"not null;default:'Pendente'" json:"paymentStatus"`
	EntryValue    *float64 `json:"entryValue,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApplyPaymentRules clears payment fields that carry no meaning for the
// current status: a pending schedule has neither a deposit nor a payment
// method, and a fully paid one has no deposit left to track.
func (s *Scheduling) ApplyPaymentRules() {
	switch s.PaymentStatus {
	case PaymentStatusPending:
		s.EntryValue = nil
		s.PaymentMethod = nil
	case PaymentStatusPaidInFull:
		s.EntryValue = nil
	}
}
