package models

import "time"

// Cliente do estúdio, sem login
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Notes     string     `gorm:"size:500" json:"notes"`

	// Preenchido quando um agendamento é marcado como concluído
	LastServiceAt *time.Time `json:"last_service_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
