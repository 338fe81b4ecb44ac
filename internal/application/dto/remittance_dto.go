package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RemittanceRequest entrada para crear o actualizar una remesa.
// Status es opcional: en creación, vacío equivale a PENDING.
type RemittanceRequest struct {
	CompanyID      string           `json:"company_id" validate:"required,uuid"`
	RemittanceType string           `json:"remittance_type" validate:"required,max=50"`
	Period         string           `json:"period" validate:"required,max=20"`
	Month          int              `json:"month" validate:"required,min=1,max=12"`
	Year           int              `json:"year" validate:"required,min=2000"`
	Amount         *decimal.Decimal `json:"amount" validate:"omitempty"`
	Status         string           `json:"status" validate:"omitempty,oneof=PENDING SUBMITTED VERIFIED"`
	ProofPath      string           `json:"proof_path" validate:"omitempty,max=500"`
	Notes          string           `json:"notes" validate:"omitempty,max=2000"`
}

// RemittanceListFilter filtros de query para el listado de remesas.
type RemittanceListFilter struct {
	CompanyID string `query:"company_id"`
	Status    string `query:"status"`
	Year      int    `query:"year"`
	Month     int    `query:"month"`
}

// RemittanceResponse salida de una remesa.
type RemittanceResponse struct {
	ID             string           `json:"id"`
	CompanyID      string           `json:"company_id"`
	CompanyName    string           `json:"company_name,omitempty"`
	RemittanceType string           `json:"remittance_type"`
	Period         string           `json:"period"`
	Month          int              `json:"month"`
	Year           int              `json:"year"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Status         string           `json:"status"`
	ProofPath      string           `json:"proof_path,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	CreatedBy      string           `json:"created_by,omitempty"`
	UpdatedBy      string           `json:"updated_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// RemittanceListResponse listado de remesas.
type RemittanceListResponse struct {
	Items []RemittanceResponse `json:"items"`
}
