package usecase

import (
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// AuditLogUseCase consulta del audit trail. Solo admin y compliance_officer;
// los clientes no tienen acceso al historial completo.
type AuditLogUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditLogUseCase construye el caso de uso.
func NewAuditLogUseCase(repo repository.AuditLogRepository) *AuditLogUseCase {
	return &AuditLogUseCase{repo: repo}
}

// List lista entradas del audit trail, más recientes primero, con filtros
// opcionales por usuario, acción y tipo de entidad.
func (uc *AuditLogUseCase) List(actor entity.Actor, f dto.AuditLogListFilter, page dto.PageRequest) (*dto.AuditLogListResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanEdit() { // admin o compliance_officer
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(repository.AuditLogFilter{
		UserID:     f.UserID,
		Action:     f.Action,
		EntityType: f.EntityType,
	}, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    l.Details,
			IPAddress:  l.IPAddress,
			CreatedAt:  l.CreatedAt,
		})
	}
	return &dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}
