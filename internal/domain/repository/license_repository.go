package repository

import (
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// LicenseFilter filtro tipado para listados de licencias. Los campos vacíos no
// filtran; los presentes se combinan con AND.
type LicenseFilter struct {
	CompanyID   string
	LicenseType string
	Status      string
}

// LicenseRepository define el puerto de persistencia para License (DIP).
type LicenseRepository interface {
	Create(license *entity.License) error
	GetByID(id string) (*entity.License, error)
	Update(license *entity.License) error
	Delete(id string) error
	// List devuelve licencias (con CompanyName) ordenadas por fecha de
	// vencimiento ascendente.
	List(filter LicenseFilter) ([]*entity.License, error)
	// ListExpiringOn devuelve licencias cuya fecha de vencimiento cae
	// exactamente en la fecha dada (para recordatorios).
	ListExpiringOn(date time.Time) ([]*entity.License, error)
}
