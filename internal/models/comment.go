package models

import "time"

// Comment represents a visitor comment attached to an event. Comments are
// never removed from storage: moderation flips the activo flag instead.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"column:evento_id;index;not null" json:"evento_id"`
	Content   string    `gorm:"column:contenido;size:1000;not null" json:"contenido"`
	Author    string    `gorm:"column:usuario;size:255;not null" json:"usuario"`
	Edited    bool      `gorm:"column:editado;not null" json:"editado"`
	Active    bool      `gorm:"column:activo;not null" json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
