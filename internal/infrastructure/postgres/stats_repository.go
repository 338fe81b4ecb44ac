package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas agregadas read-only para el dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador de consultas del dashboard.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// RefreshLicenseStatuses recalcula el estado en bloque con la misma regla del
// clasificador: vencida si ya pasó, en renovación dentro de los 30 días, activa
// en otro caso. Mantiene los conteos del dashboard siempre al día.
func (r *StatsRepo) RefreshLicenseStatuses(ctx context.Context, companyID string, today time.Time) error {
	query := `
		UPDATE licenses
		SET status = CASE
			WHEN expiration_date < $1 THEN 'EXPIRED'
			WHEN expiration_date <= $1 + INTERVAL '30 days' THEN 'PENDING_RENEWAL'
			ELSE 'ACTIVE'
		END,
		updated_at = NOW()
		WHERE status <> CASE
			WHEN expiration_date < $1 THEN 'EXPIRED'
			WHEN expiration_date <= $1 + INTERVAL '30 days' THEN 'PENDING_RENEWAL'
			ELSE 'ACTIVE'
		END`
	args := []any{today}
	if companyID != "" {
		query += ` AND company_id = $2`
		args = append(args, companyID)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("refresh license statuses: %w", err)
	}
	return nil
}

// CountLicensesByStatus cuenta licencias agrupadas por estado.
func (r *StatsRepo) CountLicensesByStatus(ctx context.Context, companyID string) (repository.LicenseStatusCounts, error) {
	var counts repository.LicenseStatusCounts
	query := `SELECT status, COUNT(*) FROM licenses`
	var args []any
	if companyID != "" {
		query += ` WHERE company_id = $1`
		args = append(args, companyID)
	}
	query += ` GROUP BY status`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return counts, fmt.Errorf("count licenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, fmt.Errorf("scan license count: %w", err)
		}
		switch status {
		case entity.LicenseStatusActive:
			counts.Active = n
		case entity.LicenseStatusPendingRenewal:
			counts.PendingRenewal = n
		case entity.LicenseStatusExpired:
			counts.Expired = n
		}
		counts.Total += n
	}
	return counts, rows.Err()
}

// CountRemittancesByStatus cuenta remesas agrupadas por estado.
func (r *StatsRepo) CountRemittancesByStatus(ctx context.Context, companyID string) (repository.RemittanceStatusCounts, error) {
	var counts repository.RemittanceStatusCounts
	query := `SELECT status, COUNT(*) FROM remittances`
	var args []any
	if companyID != "" {
		query += ` WHERE company_id = $1`
		args = append(args, companyID)
	}
	query += ` GROUP BY status`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return counts, fmt.Errorf("count remittances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return counts, fmt.Errorf("scan remittance count: %w", err)
		}
		switch status {
		case entity.RemittanceStatusPending:
			counts.Pending = n
		case entity.RemittanceStatusSubmitted:
			counts.Submitted = n
		case entity.RemittanceStatusVerified:
			counts.Verified = n
		}
		counts.Total += n
	}
	return counts, rows.Err()
}

// UpcomingExpiries devuelve las licencias que vencen dentro de la ventana,
// las más próximas primero.
func (r *StatsRepo) UpcomingExpiries(ctx context.Context, companyID string, from, to time.Time, limit int) ([]*entity.License, error) {
	query := licenseSelect + ` WHERE l.expiration_date >= $1 AND l.expiration_date <= $2`
	args := []any{from, to}
	if companyID != "" {
		args = append(args, companyID)
		query += fmt.Sprintf(" AND l.company_id = $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY l.expiration_date ASC LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("upcoming expiries: %w", err)
	}
	defer rows.Close()

	var list []*entity.License
	for rows.Next() {
		lic, err := scanLicense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan license: %w", err)
		}
		list = append(list, lic)
	}
	return list, rows.Err()
}
