package entity

import "time"

// Acciones registradas en el audit trail.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionExport = "EXPORT"
	AuditActionLogin  = "LOGIN"
	AuditActionLogout = "LOGOUT"
)

// Tipos de entidad auditables.
const (
	AuditEntityCompany    = "Company"
	AuditEntityLicense    = "License"
	AuditEntityRemittance = "Remittance"
	AuditEntityUser       = "User"
)

// AuditLog registro inmutable de una acción mutante, para trazabilidad de
// cumplimiento. Se crea una vez por mutación exitosa; nunca se actualiza ni borra.
type AuditLog struct {
	ID         string
	UserID     string // actor
	Action     string // ver constantes AuditAction*
	EntityType string // ver constantes AuditEntity*
	EntityID   string
	Details    string // descripción legible con campos distintivos de la entidad
	IPAddress  string // opcional
	CreatedAt  time.Time
}
