package repository

import (
	"context"
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// LicenseStatusCounts conteo de licencias por estado.
type LicenseStatusCounts struct {
	Active         int
	PendingRenewal int
	Expired        int
	Total          int
}

// RemittanceStatusCounts conteo de remesas por estado.
type RemittanceStatusCounts struct {
	Pending   int
	Submitted int
	Verified  int
	Total     int
}

// StatsRepository consultas read-only para el dashboard.
// Si companyID no es vacío, todas las consultas se acotan a esa empresa.
type StatsRepository interface {
	// RefreshLicenseStatuses recalcula y persiste el estado de las licencias a
	// partir de la fecha de referencia, para que los conteos nunca sirvan una
	// clasificación obsoleta.
	RefreshLicenseStatuses(ctx context.Context, companyID string, today time.Time) error
	CountLicensesByStatus(ctx context.Context, companyID string) (LicenseStatusCounts, error)
	CountRemittancesByStatus(ctx context.Context, companyID string) (RemittanceStatusCounts, error)
	// UpcomingExpiries devuelve licencias (con CompanyName) que vencen entre
	// from y to, ordenadas por vencimiento más próximo, hasta limit entradas.
	UpcomingExpiries(ctx context.Context, companyID string, from, to time.Time, limit int) ([]*entity.License, error)
}
