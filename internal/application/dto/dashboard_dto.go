package dto

// LicenseCountsDTO conteo de licencias por estado.
type LicenseCountsDTO struct {
	Active         int `json:"active"`
	PendingRenewal int `json:"pending_renewal"`
	Expired        int `json:"expired"`
	Total          int `json:"total"`
}

// RemittanceCountsDTO conteo de remesas por estado.
type RemittanceCountsDTO struct {
	Pending   int `json:"pending"`
	Submitted int `json:"submitted"`
	Verified  int `json:"verified"`
	Total     int `json:"total"`
}

// UpcomingExpiryDTO licencia próxima a vencer, para el widget del dashboard.
type UpcomingExpiryDTO struct {
	ID             string `json:"id"`
	CompanyID      string `json:"company_id"`
	CompanyName    string `json:"company_name"`
	LicenseType    string `json:"license_type"`
	ExpirationDate string `json:"expiration_date"` // 2006-01-02
	DaysUntil      int    `json:"days_until"`
	Severity       string `json:"severity"` // urgent | warning | info
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Conteos acotados por la visibilidad del llamador más las licencias que
// vencen dentro de los próximos 30 días (máximo 10, la más próxima primero).
type DashboardStatsDTO struct {
	Licenses         LicenseCountsDTO    `json:"licenses"`
	Remittances      RemittanceCountsDTO `json:"remittances"`
	UpcomingExpiries []UpcomingExpiryDTO `json:"upcoming_expiries"`
}
