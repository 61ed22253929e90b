package dto

// EventCreateRequest defines the payload for publishing an event.
type EventCreateRequest struct {
	Name         string  `json:"nombre" validate:"required,max=255"`
	Description  string  `json:"descripcion" validate:"required"`
	Date         string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	Time         *string `json:"hora" validate:"omitnil,max=16"`
	Venue        string  `json:"ubicacion" validate:"required,max=255"`
	ActivityType string  `json:"tipo_actividad" validate:"omitempty,max=255"`
	Organizer    string  `json:"organizador" validate:"omitempty,max=255"`
	MaxCapacity  *int    `json:"capacidad_maxima" validate:"omitnil,min=0"`
	Status       *string `json:"estado" validate:"omitnil,oneof=activo inactivo"`
	Image        *string `json:"imagen" validate:"omitnil,max=512"`
}

// EventUpdateRequest defines a partial event patch; nil fields are left
// untouched. Fields required at create time use omitnil so a present-but-blank
// value is rejected instead of blanking the column.
type EventUpdateRequest struct {
	Name         *string `json:"nombre" validate:"omitnil,min=1,max=255"`
	Description  *string `json:"descripcion" validate:"omitnil,min=1"`
	Date         *string `json:"fecha" validate:"omitnil,datetime=2006-01-02"`
	Time         *string `json:"hora" validate:"omitnil,max=16"`
	Venue        *string `json:"ubicacion" validate:"omitnil,min=1,max=255"`
	ActivityType *string `json:"tipo_actividad" validate:"omitnil,max=255"`
	Organizer    *string `json:"organizador" validate:"omitnil,max=255"`
	MaxCapacity  *int    `json:"capacidad_maxima" validate:"omitnil,min=0"`
	Status       *string `json:"estado" validate:"omitnil,oneof=activo inactivo"`
	Image        *string `json:"imagen" validate:"omitnil,max=512"`
}
