package models

import (
	"time"

	"gorm.io/datatypes"
)

// EventStatusActive and EventStatusInactive are the only values the estado
// column accepts.
const (
	EventStatusActive   = "activo"
	EventStatusInactive = "inactivo"
)

// Event represents a sustainability event published on the platform.
type Event struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"column:nombre;size:255;not null" json:"nombre"`
	Description  string         `gorm:"column:descripcion;type:text;not null" json:"descripcion"`
	Date         datatypes.Date `gorm:"column:fecha;not null" json:"fecha"`
	Time         *string        `gorm:"column:hora;size:16" json:"hora"`
	Venue        string         `gorm:"column:ubicacion;size:255;not null" json:"ubicacion"`
	ActivityType string         `gorm:"column:tipo_actividad;size:255" json:"tipo_actividad"`
	Organizer    string         `gorm:"column:organizador;size:255" json:"organizador"`
	MaxCapacity  int            `gorm:"column:capacidad_maxima;not null;default:0" json:"capacidad_maxima"`
	Status       string         `gorm:"column:estado;size:32;not null;default:'activo'" json:"estado"`
	Image        *string        `gorm:"column:imagen;size:512" json:"imagen"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:EventID" json:"comments,omitempty"`

	// CommentsCount is derived from the comments table on read; it is not a
	// stored column.
	CommentsCount int64 `gorm:"-" json:"comments_count"`
}
