package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas cliente.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	recorder *audit.Recorder
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, recorder *audit.Recorder) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, recorder: recorder}
}

// List lista empresas ordenadas por nombre. Los clientes solo ven su propia empresa.
func (uc *CompanyUseCase) List(actor entity.Actor) (*dto.CompanyListResponse, error) {
	if !actor.Authenticated() || !actor.CanView() {
		return nil, domain.ErrUnauthorized
	}
	companyID, none := actor.ScopeCompany("")
	if none {
		return &dto.CompanyListResponse{Items: []dto.CompanyResponse{}}, nil
	}
	list, err := uc.repo.List(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Items: items}, nil
}

// Create crea una empresa. Solo admin. El nombre es único; devuelve
// domain.ErrDuplicate si ya existe. Audita la creación.
func (uc *CompanyUseCase) Create(actor entity.Actor, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   actor.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Created company: %s", company.Name)
	if err := uc.recorder.Record(actor, entity.AuditActionCreate, entity.AuditEntityCompany, company.ID, detail); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
