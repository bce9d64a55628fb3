package dto

import "mug-store/internal/domain/models"

// swagger:model
type CreateMugRequest struct {
	ID          string `json:"-" validate:"required,uuid4"`
	Name        string `json:"name" validate:"required,notblank,max=255" example:"Bold Mug #1"`
	Description string `json:"description" validate:"required,notblank" example:"A mug for bold mornings."`
	Price       *int   `json:"price" validate:"required,min=0" example:"42"`
	Image       string `json:"image" validate:"required,url" example:"https://via.placeholder.com/150?text=Mug+1"`
	CategoryID  string `json:"category_id" validate:"required,notblank" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
}

func (r CreateMugRequest) ToModel() models.Mug {
	mug := models.Mug{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.Image,
		CategoryID:  r.CategoryID,
	}
	if r.Price != nil {
		mug.Price = *r.Price
	}

	return mug
}

// swagger:model
type UpdateMugRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=255"`
	Description *string `json:"description" validate:"omitempty,notblank"`
	Price       *int    `json:"price" validate:"omitempty,min=0"`
	Image       *string `json:"image" validate:"omitempty,url"`
	CategoryID  *string `json:"category_id" validate:"omitempty,notblank"`
}

func (r UpdateMugRequest) AllowedFields() []string {
	return []string{"name", "description", "price", "image", "category_id"}
}

func (r UpdateMugRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Image == nil && r.CategoryID == nil
}

// ToPatch leaves UpdatedAt to the service.
func (r UpdateMugRequest) ToPatch() models.MugPatch {
	return models.MugPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Image:       r.Image,
		CategoryID:  r.CategoryID,
	}
}

type MugResponse struct {
	Mug *models.Mug `json:"mug"`
}

type MugsResponse struct {
	Mugs []models.Mug `json:"mugs"`
}
