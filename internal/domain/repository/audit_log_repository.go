package repository

import "github.com/jhoicas/cumplimiento-api/internal/domain/entity"

// AuditLogFilter filtro tipado para el listado del audit trail.
type AuditLogFilter struct {
	UserID     string
	Action     string
	EntityType string
}

// AuditLogRepository define el puerto de persistencia del audit trail.
// Solo inserción y lectura: las entradas nunca se actualizan ni se borran.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// List devuelve entradas ordenadas por fecha descendente, paginadas.
	List(filter AuditLogFilter, limit, offset int) ([]*entity.AuditLog, error)
}
