package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// UserUseCase administración de usuarios. Todas las operaciones son solo admin.
type UserUseCase struct {
	repo        repository.UserRepository
	companyRepo repository.CompanyRepository
	recorder    *audit.Recorder
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, companyRepo repository.CompanyRepository, recorder *audit.Recorder) *UserUseCase {
	return &UserUseCase{repo: repo, companyRepo: companyRepo, recorder: recorder}
}

// List lista usuarios paginados, más recientes primero.
func (uc *UserUseCase) List(actor entity.Actor, page dto.PageRequest) (*dto.UserListResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Create crea un usuario con password hasheado (bcrypt). Los usuarios client
// deben tener empresa afiliada; los demás roles no llevan empresa.
func (uc *UserUseCase) Create(actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateUserRole(in.Role, in.CompanyID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	companyID := ""
	if in.Role == entity.RoleClient {
		company, err := uc.companyRepo.GetByID(in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		companyID = in.CompanyID
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Created user %s with role %s", user.Email, user.Role)
	if err := uc.recorder.Record(actor, entity.AuditActionCreate, entity.AuditEntityUser, user.ID, detail); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Update actualiza un usuario. Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(actor entity.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := validateUserRole(in.Role, in.CompanyID); err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Email = in.Email
	user.Name = in.Name
	user.Role = in.Role
	if in.Role == entity.RoleClient {
		user.CompanyID = in.CompanyID
	} else {
		user.CompanyID = ""
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	detail := fmt.Sprintf("Updated user %s", user.Email)
	if err := uc.recorder.Record(actor, entity.AuditActionUpdate, entity.AuditEntityUser, user.ID, detail); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Delete elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(actor entity.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == id {
		return fmt.Errorf("%w: no puede eliminar su propia cuenta", domain.ErrConflict)
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	detail := fmt.Sprintf("Deleted user %s", user.Email)
	return uc.recorder.Record(actor, entity.AuditActionDelete, entity.AuditEntityUser, id, detail)
}

func requireAdmin(actor entity.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

func validateUserRole(role, companyID string) error {
	switch role {
	case entity.RoleAdmin, entity.RoleComplianceOfficer:
		return nil
	case entity.RoleClient:
		if companyID == "" {
			return fmt.Errorf("%w: los usuarios client deben tener company_id", domain.ErrInvalidInput)
		}
		return nil
	default:
		return fmt.Errorf("%w: rol inválido %q", domain.ErrInvalidInput, role)
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
