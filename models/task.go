package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a post-production work item. It has no relationship to Customer or
// Scheduling; the client name is free text.
type Task struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Cliente      string    `gorm:"not null" json:"cliente"`
	Filho        string    `gorm:"default:'N/A'" json:"filho"`
	Servico      string    `gorm:"not null" json:"servico"`
	DataEnsaio   time.Time `gorm:"not null" json:"dataEnsaio"`
	DataEntrega  time.Time `gorm:"not null;index" json:"dataEntrega"`
	Status       string    `gorm:"not null;default:'Não iniciado'" json:"status"`
	ArmazenadoHD string    `json:"armazenadoHD,omitempty"`
	MinFotos     *int      `json:"minFotos,omitempty"`
	Observacao   string    `json:"observacao,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
