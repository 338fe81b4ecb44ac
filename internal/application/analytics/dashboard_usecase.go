// Package analytics contiene el caso de uso del dashboard de cumplimiento.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/compliance"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

const upcomingExpiriesLimit = 10 // entradas máximas del widget de próximos vencimientos

// DashboardUseCase genera los conteos por estado y los próximos vencimientos.
//
// Fuente de datos: StatsRepository (consultas read-only). Antes de contar,
// refresca los estados de licencia con la fecha de hoy para no servir
// clasificaciones obsoletas.
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO acotado por la visibilidad del actor.
//
// Tres llamadas en paralelo tras el refresh:
//  1. CountLicensesByStatus
//  2. CountRemittancesByStatus
//  3. UpcomingExpiries(hoy, hoy+30, 10)
func (uc *DashboardUseCase) GetStats(ctx context.Context, actor entity.Actor) (*dto.DashboardStatsDTO, error) {
	if !actor.Authenticated() || !actor.CanView() {
		return nil, domain.ErrUnauthorized
	}
	companyID, none := actor.ScopeCompany("")
	if none {
		// Cliente sin empresa afiliada: dashboard vacío.
		return &dto.DashboardStatsDTO{UpcomingExpiries: []dto.UpcomingExpiryDTO{}}, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := today.AddDate(0, 0, compliance.PendingRenewalWindowDays)

	if err := uc.statsRepo.RefreshLicenseStatuses(ctx, companyID, today); err != nil {
		return nil, fmt.Errorf("dashboard: refresh de estados: %w", err)
	}

	type licensesResult struct {
		counts repository.LicenseStatusCounts
		err    error
	}
	type remittancesResult struct {
		counts repository.RemittanceStatusCounts
		err    error
	}
	type expiriesResult struct {
		items []*entity.License
		err   error
	}

	licCh := make(chan licensesResult, 1)
	remCh := make(chan remittancesResult, 1)
	expCh := make(chan expiriesResult, 1)

	go func() {
		counts, err := uc.statsRepo.CountLicensesByStatus(ctx, companyID)
		licCh <- licensesResult{counts, err}
	}()
	go func() {
		counts, err := uc.statsRepo.CountRemittancesByStatus(ctx, companyID)
		remCh <- remittancesResult{counts, err}
	}()
	go func() {
		items, err := uc.statsRepo.UpcomingExpiries(ctx, companyID, today, windowEnd, upcomingExpiriesLimit)
		expCh <- expiriesResult{items, err}
	}()

	lic := <-licCh
	rem := <-remCh
	exp := <-expCh

	if lic.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de licencias: %w", lic.err)
	}
	if rem.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de remesas: %w", rem.err)
	}
	if exp.err != nil {
		return nil, fmt.Errorf("dashboard: próximos vencimientos: %w", exp.err)
	}

	upcoming := make([]dto.UpcomingExpiryDTO, 0, len(exp.items))
	for _, l := range exp.items {
		days := compliance.DaysUntil(l.ExpirationDate, today)
		upcoming = append(upcoming, dto.UpcomingExpiryDTO{
			ID:             l.ID,
			CompanyID:      l.CompanyID,
			CompanyName:    l.CompanyName,
			LicenseType:    l.LicenseType,
			ExpirationDate: l.ExpirationDate.Format(dto.DateLayout),
			DaysUntil:      days,
			Severity:       compliance.ReminderSeverity(days),
		})
	}

	return &dto.DashboardStatsDTO{
		Licenses: dto.LicenseCountsDTO{
			Active:         lic.counts.Active,
			PendingRenewal: lic.counts.PendingRenewal,
			Expired:        lic.counts.Expired,
			Total:          lic.counts.Total,
		},
		Remittances: dto.RemittanceCountsDTO{
			Pending:   rem.counts.Pending,
			Submitted: rem.counts.Submitted,
			Verified:  rem.counts.Verified,
			Total:     rem.counts.Total,
		},
		UpcomingExpiries: upcoming,
	}, nil
}
