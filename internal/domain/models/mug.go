package models

type Mug struct {
	ID          string `json:"id" db:"id" gorm:"primaryKey"`
	Name        string `json:"name" db:"name" gorm:"not null"`
	Description string `json:"description" db:"description" gorm:"not null"`
	Price       int    `json:"price" db:"price" gorm:"not null"` // whole units, currency is not modelled
	CategoryID  string `json:"categoryId" db:"category_id" gorm:"column:category_id;not null;index"`
	Image       string `json:"image" db:"image" gorm:"not null"`
	CreatedAt   int64  `json:"createdAt" db:"created_at" gorm:"autoCreateTime:false"`
	UpdatedAt   int64  `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime:false"`

	Category *Category `json:"-" db:"-" gorm:"foreignKey:CategoryID"`
}

// MugPatch holds the columns a PATCH may change. UpdatedAt is always written.
type MugPatch struct {
	Name        *string
	Description *string
	Price       *int
	Image       *string
	CategoryID  *string
	UpdatedAt   int64
}

func (p MugPatch) Columns() map[string]any {
	columns := map[string]any{"updated_at": p.UpdatedAt}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Description != nil {
		columns["description"] = *p.Description
	}
	if p.Price != nil {
		columns["price"] = *p.Price
	}
	if p.Image != nil {
		columns["image"] = *p.Image
	}
	if p.CategoryID != nil {
		columns["category_id"] = *p.CategoryID
	}

	return columns
}
