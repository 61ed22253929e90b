package dto

import "github.com/ecoeventos/eventos-api/internal/models"

// FaqCreateRequest defines the payload for creating a FAQ entry.
type FaqCreateRequest struct {
	Question string  `json:"pregunta" validate:"required,max=255"`
	Answer   string  `json:"respuesta" validate:"required,max=1000"`
	Category *string `json:"categoria" validate:"omitnil,max=255"`
	Order    *int    `json:"orden" validate:"omitnil,min=0"`
	Active   *bool   `json:"activo"`
}

// FaqUpdateRequest defines a partial FAQ patch; nil fields are left untouched.
// Fields required at create time use omitnil so a present-but-blank value is
// rejected instead of blanking the column.
type FaqUpdateRequest struct {
	Question *string `json:"pregunta" validate:"omitnil,min=1,max=255"`
	Answer   *string `json:"respuesta" validate:"omitnil,min=1,max=1000"`
	Category *string `json:"categoria" validate:"omitnil,max=255"`
	Order    *int    `json:"orden" validate:"omitnil,min=0"`
	Active   *bool   `json:"activo"`
}

// FaqListRequest describes the incoming query for the admin FAQ listing.
type FaqListRequest struct {
	Category *string
	Active   *bool
	Search   string
	Page     int
	PageSize int
}

// FaqListResponse wraps one page of the filtered and ordered FAQ listing.
type FaqListResponse struct {
	Items    []models.Faq `json:"items"`
	Page     int          `json:"page"`
	LastPage int          `json:"last_page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
}

// FaqReorderItem is one (id, orden) pair of a reorder batch.
type FaqReorderItem struct {
	ID    uint `json:"id" validate:"required"`
	Order int  `json:"orden" validate:"min=0"`
}

// FaqReorderRequest carries the batch applied by the reorder endpoint.
type FaqReorderRequest struct {
	Items []FaqReorderItem `json:"items" validate:"required,min=1,dive"`
}
