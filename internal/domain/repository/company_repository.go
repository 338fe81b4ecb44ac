package repository

import "github.com/jhoicas/cumplimiento-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
	// List devuelve todas las empresas ordenadas por nombre ascendente.
	// Si companyID no es vacío, restringe a esa empresa (scoping de cliente).
	List(companyID string) ([]*entity.Company, error)
}
