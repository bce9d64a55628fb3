package dto

import "mug-store/internal/domain/models"

// swagger:model
type CreateCategoryRequest struct {
	ID   string `json:"-" validate:"required,uuid4"`
	Name string `json:"name" validate:"required,notblank,max=255" example:"Cool Mugs"`
}

func (r CreateCategoryRequest) ToModel() models.Category {
	return models.Category{
		ID:   r.ID,
		Name: r.Name,
	}
}

// swagger:model
type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,notblank,max=255" example:"Lame Mugs"`
}

func (r UpdateCategoryRequest) AllowedFields() []string {
	return []string{"name"}
}

func (r UpdateCategoryRequest) Empty() bool {
	return r.Name == nil
}

func (r UpdateCategoryRequest) ToPatch() models.CategoryPatch {
	return models.CategoryPatch{Name: r.Name}
}

type CategoryResponse struct {
	Category *models.Category `json:"category"`
}

type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}
