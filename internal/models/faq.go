package models

import "time"

// Faq is a single entry of the public knowledge base. Ordering within
// listings follows orden ascending with id as tie-breaker; orden values are
// not unique.
type Faq struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Question  string    `gorm:"column:pregunta;size:255;not null" json:"pregunta"`
	Answer    string    `gorm:"column:respuesta;size:1000;not null" json:"respuesta"`
	Category  *string   `gorm:"column:categoria;size:255" json:"categoria"`
	Order     int       `gorm:"column:orden;not null;default:0" json:"orden"`
	Active    bool      `gorm:"column:activo;not null" json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
