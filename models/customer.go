package models

import (
	"time"

	"github.com/google/uuid"
)

// Child is an entry of a customer's ordered children list. Rows are replaced
// wholesale whenever the customer is updated.
type Child struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Position   int       `gorm:"not null" json:"-"`

	Name string `gorm:"not null" json:"name"`
	DOB  string `gorm:"not null" json:"dob"` // YYYY-MM-DD
}

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	FullName      string `gorm:"not null" json:"fullName"`
	PreferredName string `json:"preferredName"`
	CPF           string `gorm:"not null;uniqueIndex" json:"cpf"`
	DOB           string `gorm:"not null" json:"dob"` // YYYY-MM-DD
	Address       string `gorm:"not null" json:"address"`
	CEP           string `gorm:"not null" json:"cep"`
	Phone         string `gorm:"not null" json:"phone"`
	Email         string `gorm:"not null;uniqueIndex" json:"email"`
	Instagram     string `json:"instagram"`
	HusbandName   string `json:"husbandName"`
	HusbandDOB    string `json:"husbandDob"` // YYYY-MM-DD, optional

	Children []Child `gorm:"foreignKey:CustomerID" json:"children"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName is the name shown on cards and autofill lists.
func (c Customer) DisplayName() string {
	if c.PreferredName != "" {
		return c.PreferredName
	}
	return c.FullName
}
