// Package auth contiene el caso de uso de autenticación: login con bcrypt
// y emisión de JWT con claim de rol.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
	"github.com/jhoicas/cumplimiento-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login y logout.
type AuthUseCase struct {
	userRepo repository.UserRepository
	recorder *audit.Recorder
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, recorder *audit.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, recorder: recorder, jwtCfg: jwtCfg}
}

// Login verifica email/password, rechaza cuentas inactivas, genera el JWT con
// user_id, company_id y role, y audita el ingreso.
func (uc *AuthUseCase) Login(in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	actor := user.Actor()
	actor.IP = ip
	detail := fmt.Sprintf("User %s logged in", user.Email)
	if err := uc.recorder.Record(actor, entity.AuditActionLogin, entity.AuditEntityUser, user.ID, detail); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			CompanyID: user.CompanyID,
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}

// Logout solo deja constancia en el audit trail; el token JWT sigue siendo
// válido hasta su expiración (stateless).
func (uc *AuthUseCase) Logout(actor entity.Actor) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	detail := fmt.Sprintf("User %s logged out", actor.UserID)
	return uc.recorder.Record(actor, entity.AuditActionLogout, entity.AuditEntityUser, actor.UserID, detail)
}
