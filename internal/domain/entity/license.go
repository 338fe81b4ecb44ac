package entity

import "time"

// Estados de License. Derivados siempre de la fecha de vencimiento, nunca del llamador.
const (
	LicenseStatusActive         = "ACTIVE"
	LicenseStatusPendingRenewal = "PENDING_RENEWAL"
	LicenseStatusExpired        = "EXPIRED"
)

// License representa un permiso o certificación regulatoria de una empresa.
// Ej. de LicenseType: PENCOM, NSITF, ITF, TAX, CAC.
type License struct {
	ID             string
	CompanyID      string
	LicenseType    string
	IssuingBody    string
	IssueDate      time.Time // solo fecha
	ExpirationDate time.Time // solo fecha
	Status         string    // ver constantes LicenseStatus*
	DocumentPath   string    // opcional
	Notes          string    // opcional
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// CompanyName se llena en lecturas con JOIN; no se persiste en licenses.
	CompanyName string
}
