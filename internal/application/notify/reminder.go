// Package notify construye y despacha recordatorios de vencimiento de licencias.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cumplimiento-api/internal/domain/compliance"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// ReminderUseCase envía recordatorios de vencimiento a los usuarios admin y
// compliance_officer activos. Corre en background (ver cmd/api); nunca falla
// el ciclo por un envío fallido: cada resultado se reporta como booleano.
type ReminderUseCase struct {
	licenseRepo repository.LicenseRepository
	userRepo    repository.UserRepository
	mailer      Mailer
	days        []int // umbrales de días antes del vencimiento, ej. [30, 15, 7]
	log         zerolog.Logger
}

// NewReminderUseCase construye el caso de uso.
func NewReminderUseCase(licenseRepo repository.LicenseRepository, userRepo repository.UserRepository, mailer Mailer, days []int, log zerolog.Logger) *ReminderUseCase {
	return &ReminderUseCase{licenseRepo: licenseRepo, userRepo: userRepo, mailer: mailer, days: days, log: log}
}

// Run busca licencias cuyo vencimiento cae exactamente en alguno de los
// umbrales configurados y envía un correo por licencia a cada destinatario.
// Devuelve cuántos envíos salieron bien y cuántos fallaron.
func (uc *ReminderUseCase) Run(ctx context.Context, today time.Time) (sent, failed int, err error) {
	// Misma frontera de día que el clasificador de estados: fecha a medianoche UTC.
	// Sin esto, un today con hora local podría correr los umbrales un día cerca
	// de la medianoche.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	recipients, err := uc.userRepo.ListActiveByRoles([]string{entity.RoleAdmin, entity.RoleComplianceOfficer})
	if err != nil {
		return 0, 0, fmt.Errorf("reminder: listar destinatarios: %w", err)
	}
	if len(recipients) == 0 {
		uc.log.Warn().Msg("recordatorios: no hay destinatarios activos")
		return 0, 0, nil
	}
	for _, days := range uc.days {
		target := today.AddDate(0, 0, days)
		licenses, err := uc.licenseRepo.ListExpiringOn(target)
		if err != nil {
			return sent, failed, fmt.Errorf("reminder: licencias que vencen en %d días: %w", days, err)
		}
		for _, lic := range licenses {
			for _, u := range recipients {
				if uc.SendExpiryReminder(ctx, u.Email, lic.CompanyName, lic.LicenseType, lic.ExpirationDate, days) {
					sent++
				} else {
					failed++
				}
			}
		}
	}
	return sent, failed, nil
}

// SendExpiryReminder formatea y despacha un recordatorio. El fallo de envío
// se captura y se reporta como false; el llamador decide si reintenta o solo
// lo deja en el log.
func (uc *ReminderUseCase) SendExpiryReminder(ctx context.Context, to, companyName, licenseType string, expiration time.Time, daysUntil int) bool {
	subject := fmt.Sprintf("Recordatorio de vencimiento: %s - %s", licenseType, companyName)
	html := reminderBody(companyName, licenseType, expiration, daysUntil)
	if err := uc.mailer.Send(ctx, to, subject, html); err != nil {
		uc.log.Error().Err(err).
			Str("to", to).
			Str("license_type", licenseType).
			Str("company", companyName).
			Msg("fallo al enviar recordatorio")
		return false
	}
	uc.log.Info().
		Str("to", to).
		Str("license_type", licenseType).
		Int("days_until", daysUntil).
		Msg("recordatorio enviado")
	return true
}

// Colores por severidad para el encabezado del correo.
var severityColors = map[string]string{
	compliance.SeverityUrgent:  "#dc2626",
	compliance.SeverityWarning: "#f59e0b",
	compliance.SeverityInfo:    "#16a34a",
}

func reminderBody(companyName, licenseType string, expiration time.Time, daysUntil int) string {
	severity := compliance.ReminderSeverity(daysUntil)
	color := severityColors[severity]
	closing := "Por favor gestione la renovación a tiempo para mantener el cumplimiento."
	if severity == compliance.SeverityUrgent {
		closing = "URGENTE: esta licencia vence en 7 días o menos. Tome acción inmediata."
	}
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: %s;">Notificación de vencimiento de licencia</h2>
  <p>Estimado Oficial de Cumplimiento,</p>
  <p>Este es un recordatorio automático de que la siguiente licencia está próxima a vencer:</p>
  <div style="background-color: #f3f4f6; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Empresa:</strong> %s</p>
    <p><strong>Tipo de licencia:</strong> %s</p>
    <p><strong>Fecha de vencimiento:</strong> %s</p>
    <p><strong>Días restantes:</strong> %d</p>
  </div>
  <p style="color: %s;">%s</p>
  <p>Atentamente,<br>Sistema de Cumplimiento</p>
</div>`, color, companyName, licenseType, expiration.Format("02/01/2006"), daysUntil, color, closing)
}
