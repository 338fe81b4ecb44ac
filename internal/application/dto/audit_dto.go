package dto

import "time"

// AuditLogListFilter filtros de query para el listado del audit trail.
type AuditLogListFilter struct {
	UserID     string `query:"user_id"`
	Action     string `query:"action"`
	EntityType string `query:"entity_type"`
}

// AuditLogResponse salida de una entrada del audit trail.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Details    string    `json:"details"`
	IPAddress  string    `json:"ip_address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLogListResponse listado paginado del audit trail.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
