// Package audit registra el audit trail de cada mutación exitosa.
package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// Recorder escribe entradas del audit trail. Se invoca de forma síncrona
// inmediatamente después de confirmar la mutación en storage; no hay
// transacción que envuelva el par mutación+auditoría, así que un fallo aquí
// se propaga como error interno aunque la mutación ya haya quedado escrita.
type Recorder struct {
	repo repository.AuditLogRepository
	log  zerolog.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log zerolog.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record persiste una entrada del audit trail y la refleja en el log estructurado.
// Details debe incluir los campos distintivos de la entidad y el nombre de su empresa.
func (r *Recorder) Record(actor entity.Actor, action, entityType, entityID, details string) error {
	log := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     actor.UserID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IPAddress:  actor.IP,
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Create(log); err != nil {
		r.log.Error().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("fallo al escribir audit trail")
		return fmt.Errorf("audit: record %s %s: %w", action, entityType, err)
	}
	r.log.Info().
		Str("user_id", actor.UserID).
		Str("action", action).
		Str("entity_type", entityType).
		Str("entity_id", entityID).
		Msg(details)
	return nil
}
