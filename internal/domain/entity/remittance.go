package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Remittance. A diferencia de License, los fija el llamador.
const (
	RemittanceStatusPending   = "PENDING"
	RemittanceStatusSubmitted = "SUBMITTED"
	RemittanceStatusVerified  = "VERIFIED"
)

// Remittance representa un aporte estatutario periódico de una empresa.
// Ej. de RemittanceType: PAYE, PENCOM, NHF, NSITF, ITF.
type Remittance struct {
	ID             string
	CompanyID      string
	RemittanceType string
	Period         string // etiqueta legible, ej. "2024-01"
	Month          int    // 1-12
	Year           int
	Amount         decimal.NullDecimal // opcional
	Status         string              // ver constantes RemittanceStatus*
	ProofPath      string              // opcional
	Notes          string              // opcional
	CreatedBy      string
	UpdatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// CompanyName se llena en lecturas con JOIN; no se persiste en remittances.
	CompanyName string
}

// ValidRemittanceStatus verifica que el estado sea uno de los permitidos.
func ValidRemittanceStatus(s string) bool {
	switch s {
	case RemittanceStatusPending, RemittanceStatusSubmitted, RemittanceStatusVerified:
		return true
	}
	return false
}
