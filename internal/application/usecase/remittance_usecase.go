package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// RemittanceUseCase aplica reglas de negocio para remesas estatutarias.
// A diferencia de las licencias, el estado de una remesa sí lo fija el
// llamador (PENDING por defecto en creación).
type RemittanceUseCase struct {
	repo        repository.RemittanceRepository
	companyRepo repository.CompanyRepository
	recorder    *audit.Recorder
}

// NewRemittanceUseCase construye el caso de uso.
func NewRemittanceUseCase(repo repository.RemittanceRepository, companyRepo repository.CompanyRepository, recorder *audit.Recorder) *RemittanceUseCase {
	return &RemittanceUseCase{repo: repo, companyRepo: companyRepo, recorder: recorder}
}

// List lista remesas ordenadas por año y mes descendentes, acotadas por la
// visibilidad del llamador y los filtros opcionales (AND).
func (uc *RemittanceUseCase) List(actor entity.Actor, f dto.RemittanceListFilter) (*dto.RemittanceListResponse, error) {
	if !actor.Authenticated() || !actor.CanView() {
		return nil, domain.ErrUnauthorized
	}
	companyID, none := actor.ScopeCompany(f.CompanyID)
	if none {
		return &dto.RemittanceListResponse{Items: []dto.RemittanceResponse{}}, nil
	}
	list, err := uc.repo.List(repository.RemittanceFilter{
		CompanyID: companyID,
		Status:    f.Status,
		Year:      f.Year,
		Month:     f.Month,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.RemittanceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *entityToRemittanceResponse(r))
	}
	return &dto.RemittanceListResponse{Items: items}, nil
}

// Create crea una remesa. Requiere admin o compliance_officer. Status vacío
// equivale a PENDING. Audita con acción CREATE.
func (uc *RemittanceUseCase) Create(actor entity.Actor, in dto.RemittanceRequest) (*dto.RemittanceResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanEdit() {
		return nil, domain.ErrForbidden
	}
	if err := validateRemittanceInput(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.RemittanceStatusPending
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	remittance := &entity.Remittance{
		ID:             uuid.New().String(),
		CompanyID:      in.CompanyID,
		RemittanceType: in.RemittanceType,
		Period:         in.Period,
		Month:          in.Month,
		Year:           in.Year,
		Amount:         toNullDecimal(in.Amount),
		Status:         status,
		ProofPath:      in.ProofPath,
		Notes:          in.Notes,
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
		CompanyName:    company.Name,
	}
	if err := uc.repo.Create(remittance); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Created remittance: %s %s for %s", remittance.RemittanceType, remittance.Period, company.Name)
	if err := uc.recorder.Record(actor, entity.AuditActionCreate, entity.AuditEntityRemittance, remittance.ID, detail); err != nil {
		return nil, err
	}
	return entityToRemittanceResponse(remittance), nil
}

// Update actualiza una remesa por ID. Requiere admin o compliance_officer.
func (uc *RemittanceUseCase) Update(actor entity.Actor, id string, in dto.RemittanceRequest) (*dto.RemittanceResponse, error) {
	if !actor.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanEdit() {
		return nil, domain.ErrForbidden
	}
	if err := validateRemittanceInput(in); err != nil {
		return nil, err
	}
	remittance, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if remittance == nil {
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
	remittance.CompanyID = in.CompanyID
	remittance.RemittanceType = in.RemittanceType
	remittance.Period = in.Period
	remittance.Month = in.Month
	remittance.Year = in.Year
	remittance.Amount = toNullDecimal(in.Amount)
	if in.Status != "" {
		remittance.Status = in.Status
	}
	remittance.ProofPath = in.ProofPath
	remittance.Notes = in.Notes
	remittance.UpdatedBy = actor.UserID
	remittance.UpdatedAt = now
	remittance.CompanyName = company.Name
	if err := uc.repo.Update(remittance); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Updated remittance: %s %s for %s", remittance.RemittanceType, remittance.Period, company.Name)
	if err := uc.recorder.Record(actor, entity.AuditActionUpdate, entity.AuditEntityRemittance, remittance.ID, detail); err != nil {
		return nil, err
	}
	return entityToRemittanceResponse(remittance), nil
}

// Delete elimina una remesa por ID. Solo admin. Lee primero el registro para
// la entrada de auditoría; si no existe devuelve ErrNotFound sin auditar.
func (uc *RemittanceUseCase) Delete(actor entity.Actor, id string) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.CanDelete() {
		return domain.ErrForbidden
	}
	remittance, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if remittance == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	detail := fmt.Sprintf("Deleted remittance: %s %s for %s", remittance.RemittanceType, remittance.Period, remittance.CompanyName)
	return uc.recorder.Record(actor, entity.AuditActionDelete, entity.AuditEntityRemittance, id, detail)
}

func validateRemittanceInput(in dto.RemittanceRequest) error {
	if in.CompanyID == "" || in.RemittanceType == "" || in.Period == "" || in.Month == 0 || in.Year == 0 {
		return fmt.Errorf("%w: company_id, remittance_type, period, month y year son requeridos", domain.ErrInvalidInput)
	}
	if in.Month < 1 || in.Month > 12 {
		return fmt.Errorf("%w: month debe estar entre 1 y 12", domain.ErrInvalidInput)
	}
	if in.Status != "" && !entity.ValidRemittanceStatus(in.Status) {
		return fmt.Errorf("%w: status debe ser PENDING, SUBMITTED o VERIFIED", domain.ErrInvalidInput)
	}
	return nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func entityToRemittanceResponse(r *entity.Remittance) *dto.RemittanceResponse {
	if r == nil {
		return nil
	}
	var amount *decimal.Decimal
	if r.Amount.Valid {
		a := r.Amount.Decimal
		amount = &a
	}
	return &dto.RemittanceResponse{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		CompanyName:    r.CompanyName,
		RemittanceType: r.RemittanceType,
		Period:         r.Period,
		Month:          r.Month,
		Year:           r.Year,
		Amount:         amount,
		Status:         r.Status,
		ProofPath:      r.ProofPath,
		Notes:          r.Notes,
		CreatedBy:      r.CreatedBy,
		UpdatedBy:      r.UpdatedBy,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
