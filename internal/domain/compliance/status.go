// Package compliance contiene las reglas puras de vigencia de licencias:
// clasificación de estado por fecha de vencimiento y severidad de recordatorios.
package compliance

import (
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// PendingRenewalWindowDays ventana de días dentro de la cual una licencia
// vigente pasa a PENDING_RENEWAL.
const PendingRenewalWindowDays = 30

// Severidades de recordatorio de vencimiento (presentación/color).
const (
	SeverityUrgent  = "urgent"  // vence en 7 días o menos
	SeverityWarning = "warning" // vence en 15 días o menos
	SeverityInfo    = "info"    // resto
)

// DaysUntil devuelve la diferencia en días completos entre today y expiration.
// La hora del día se ignora: ambos instantes se truncan a fecha antes de comparar.
// Negativo si expiration ya pasó.
func DaysUntil(expiration, today time.Time) int {
	e := dateOnly(expiration)
	t := dateOnly(today)
	return int(e.Sub(t).Hours() / 24)
}

// LicenseStatus clasifica una fecha de vencimiento respecto a today.
//
//   - diferencia < 0        → EXPIRED (siempre, sin importar magnitud)
//   - 0 ≤ diferencia ≤ 30   → PENDING_RENEWAL (ambos extremos inclusivos)
//   - diferencia > 30       → ACTIVE
//
// Se recalcula en cada escritura de la fecha de vencimiento; el estado que
// traiga el llamador nunca es fuente de verdad.
func LicenseStatus(expiration, today time.Time) string {
	days := DaysUntil(expiration, today)
	switch {
	case days < 0:
		return entity.LicenseStatusExpired
	case days <= PendingRenewalWindowDays:
		return entity.LicenseStatusPendingRenewal
	default:
		return entity.LicenseStatusActive
	}
}

// ReminderSeverity mapea días restantes a severidad de presentación.
func ReminderSeverity(daysUntil int) string {
	switch {
	case daysUntil <= 7:
		return SeverityUrgent
	case daysUntil <= 15:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
