package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/compliance"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// LicenseUseCase aplica reglas de negocio para licencias regulatorias.
// El estado de cada licencia se deriva de su fecha de vencimiento en cada
// escritura (compliance.LicenseStatus); nunca se acepta del llamador.
type LicenseUseCase struct {
	repo        repository.LicenseRepository
	companyRepo repository.CompanyRepository
	recorder    *audit.Recorder
}

// NewLicenseUseCase construye el caso de uso.
func NewLicenseUseCase(repo repository.LicenseRepository, companyRepo repository.CompanyRepository, recorder *audit.Recorder) *LicenseUseCase {
	return &LicenseUseCase{repo: repo, companyRepo: companyRepo, recorder: recorder}
}

// List lista licencias ordenadas por vencimiento ascendente, acotadas por la
// visibilidad del llamador y los filtros opcionales (AND).
func (uc *LicenseUseCase) List(actor entity.Actor, f dto.LicenseListFilter) (*dto.LicenseListResponse, error) {
	if !actor.Authenticated() || !actor.CanView() {
		return nil, domain.ErrUnauthorized
	}
	companyID, none := actor.ScopeCompany(f.CompanyID)
	if none {
		return &dto.LicenseListResponse{Items: []dto.LicenseResponse{}}, nil
	}
	list, err := uc.repo.List(repository.LicenseFilter{
		CompanyID:   companyID,
		LicenseType: f.LicenseType,
		Status:      f.Status,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.LicenseResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *entityToLicenseResponse(l))
	}
	return &dto.LicenseListResponse{Items: items}, nil
}

// Create crea una licencia. Requiere admin o compliance_officer. El estado se
// calcula del expiration_date; audita con acción CREATE.
func (uc *LicenseUseCase) Create(actor entity.Actor, in dto.LicenseRequest) (*dto.LicenseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanEdit() {
		return nil, domain.ErrForbidden
	}
	issue, expiration, err := uc.validateLicenseInput(in)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	license := &entity.License{
		ID:             uuid.New().String(),
		CompanyID:      in.CompanyID,
		LicenseType:    in.LicenseType,
		IssuingBody:    in.IssuingBody,
		IssueDate:      issue,
		ExpirationDate: expiration,
		Status:         compliance.LicenseStatus(expiration, now),
		DocumentPath:   in.DocumentPath,
		Notes:          in.Notes,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CompanyName:    company.Name,
	}
	if err := uc.repo.Create(license); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Created license: %s for %s", license.LicenseType, company.Name)
	if err := uc.recorder.Record(actor, entity.AuditActionCreate, entity.AuditEntityLicense, license.ID, detail); err != nil {
		return nil, err
	}
	return entityToLicenseResponse(license), nil
}

// Update actualiza una licencia por ID. Requiere admin o compliance_officer.
// El estado se recalcula siempre del expiration_date recibido.
func (uc *LicenseUseCase) Update(actor entity.Actor, id string, in dto.LicenseRequest) (*dto.LicenseResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanEdit() {
		return nil, domain.ErrForbidden
	}
	issue, expiration, err := uc.validateLicenseInput(in)
	if err != nil {
		return nil, err
	}
	license, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	license.CompanyID = in.CompanyID
	license.LicenseType = in.LicenseType
	license.IssuingBody = in.IssuingBody
	license.IssueDate = issue
	license.ExpirationDate = expiration
	license.Status = compliance.LicenseStatus(expiration, now)
	license.DocumentPath = in.DocumentPath
	license.Notes = in.Notes
	license.UpdatedBy = actor.UserID
	license.UpdatedAt = now
	license.CompanyName = company.Name
	if err := uc.repo.Update(license); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Updated license: %s for %s", license.LicenseType, company.Name)
	if err := uc.recorder.Record(actor, entity.AuditActionUpdate, entity.AuditEntityLicense, license.ID, detail); err != nil {
		return nil, err
	}
	return entityToLicenseResponse(license), nil
}

// Delete elimina una licencia por ID. Solo admin. Lee primero el registro para
// incluir sus campos descriptivos en la entrada de auditoría; si no existe,
// devuelve ErrNotFound sin auditar.
func (uc *LicenseUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.CanDelete() {
		return domain.ErrForbidden
	}
	license, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if license == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	detail := fmt.Sprintf("Deleted license: %s for %s", license.LicenseType, license.CompanyName)
	return uc.recorder.Record(actor, entity.AuditActionDelete, entity.AuditEntityLicense, id, detail)
}

// validateLicenseInput verifica requeridos y parsea las fechas (2006-01-02).
func (uc *LicenseUseCase) validateLicenseInput(in dto.LicenseRequest) (issue, expiration time.Time, err error) {
	if in.CompanyID == "" || in.LicenseType == "" || in.IssuingBody == "" || in.IssueDate == "" || in.ExpirationDate == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: company_id, license_type, issuing_body, issue_date y expiration_date son requeridos", domain.ErrInvalidInput)
	}
	issue, err = time.Parse(dto.DateLayout, in.IssueDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: issue_date debe tener formato %s", domain.ErrInvalidInput, dto.DateLayout)
	}
	expiration, err = time.Parse(dto.DateLayout, in.ExpirationDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: expiration_date debe tener formato %s", domain.ErrInvalidInput, dto.DateLayout)
	}
	return issue, expiration, nil
}

func entityToLicenseResponse(l *entity.License) *dto.LicenseResponse {
	if l == nil {
		return nil
	}
	return &dto.LicenseResponse{
		ID:             l.ID,
		CompanyID:      l.CompanyID,
		CompanyName:    l.CompanyName,
		LicenseType:    l.LicenseType,
		IssuingBody:    l.IssuingBody,
		IssueDate:      l.IssueDate.Format(dto.DateLayout),
		ExpirationDate: l.ExpirationDate.Format(dto.DateLayout),
		Status:         l.Status,
		DocumentPath:   l.DocumentPath,
		Notes:          l.Notes,
		CreatedBy:      l.CreatedBy,
		UpdatedBy:      l.UpdatedBy,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}
