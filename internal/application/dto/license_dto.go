package dto

import "time"

// LicenseRequest entrada para crear o actualizar una licencia.
// Las fechas van en formato 2006-01-02. No admite campo status: el estado se
// deriva siempre en el servidor a partir de expiration_date.
type LicenseRequest struct {
	CompanyID      string `json:"company_id" validate:"required,uuid"`
	LicenseType    string `json:"license_type" validate:"required,max=100"`
	IssuingBody    string `json:"issuing_body" validate:"required,max=100"`
	IssueDate      string `json:"issue_date" validate:"required"`
	ExpirationDate string `json:"expiration_date" validate:"required"`
	DocumentPath   string `json:"document_path" validate:"omitempty,max=500"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
}

// LicenseListFilter filtros de query para el listado de licencias.
type LicenseListFilter struct {
	CompanyID   string `query:"company_id"`
	LicenseType string `query:"license_type"`
	Status      string `query:"status"`
}

// LicenseResponse salida de una licencia.
type LicenseResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	CompanyName    string    `json:"company_name,omitempty"`
	LicenseType    string    `json:"license_type"`
	IssuingBody    string    `json:"issuing_body"`
	IssueDate      string    `json:"issue_date"`      // 2006-01-02
	ExpirationDate string    `json:"expiration_date"` // 2006-01-02
	Status         string    `json:"status"`
	DocumentPath   string    `json:"document_path,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedBy      string    `json:"created_by,omitempty"`
	UpdatedBy      string    `json:"updated_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LicenseListResponse listado de licencias.
type LicenseListResponse struct {
	Items []LicenseResponse `json:"items"`
}
