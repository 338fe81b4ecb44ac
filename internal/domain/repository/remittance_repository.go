package repository

import "github.com/jhoicas/cumplimiento-api/internal/domain/entity"

// RemittanceFilter filtro tipado para listados de remesas. Los campos cero no
// filtran; los presentes se combinan con AND.
type RemittanceFilter struct {
	CompanyID string
	Status    string
	Year      int
	Month     int
}

// RemittanceRepository define el puerto de persistencia para Remittance (DIP).
type RemittanceRepository interface {
	Create(remittance *entity.Remittance) error
	GetByID(id string) (*entity.Remittance, error)
	Update(remittance *entity.Remittance) error
	Delete(id string) error
	// List devuelve remesas (con CompanyName) ordenadas por año descendente y
	// mes descendente.
	List(filter RemittanceFilter) ([]*entity.Remittance, error)
}
