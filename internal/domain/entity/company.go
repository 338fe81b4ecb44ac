package entity

import "time"

// Company representa una empresa cliente cuyas licencias y remesas se rastrean.
type Company struct {
	ID          string
	Name        string // único
	Description string
	CreatedBy   string // User.ID del creador
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
