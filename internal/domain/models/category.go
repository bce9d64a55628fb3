package models

type Category struct {
	ID   string `json:"id" db:"id" gorm:"primaryKey"`
	Name string `json:"name" db:"name" gorm:"not null"`
}

// CategoryPatch holds the columns a PATCH may change. Nil fields are left as is.
type CategoryPatch struct {
	Name *string
}

func (p CategoryPatch) Columns() map[string]any {
	columns := make(map[string]any)
	if p.Name != nil {
		columns["name"] = *p.Name
	}

	return columns
}
