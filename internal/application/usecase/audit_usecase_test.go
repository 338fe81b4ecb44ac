package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildAuditLogUC(entries ...*entity.AuditLog) (*usecase.AuditLogUseCase, *fakeAuditRepo) {
	auditRepo := &fakeAuditRepo{entries: entries}
	return usecase.NewAuditLogUseCase(auditRepo), auditRepo
}

func auditEntry(userID, action, entityType string) *entity.AuditLog {
	return &entity.AuditLog{
		ID:         "log-" + userID + "-" + action,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   "ent-1",
		Details:    "detalle",
		CreatedAt:  time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestAuditLogList_OficialVeEntradas(t *testing.T) {
	uc, auditRepo := buildAuditLogUC(
		auditEntry("admin-1", entity.AuditActionCreate, "license"),
		auditEntry("officer-1", entity.AuditActionUpdate, "remittance"),
	)

	out, err := uc.List(officerActor, dto.AuditLogListFilter{}, dto.PageRequest{})

	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	// Sin limit/offset explícitos aplican los defaults de paginación.
	assert.Equal(t, 20, auditRepo.lastLimit)
	assert.Equal(t, 0, auditRepo.lastOffset)
	assert.Equal(t, 20, out.Page.Limit)
	assert.Equal(t, 0, out.Page.Offset)
}

func TestAuditLogList_FiltrosLleganAlRepositorio(t *testing.T) {
	uc, auditRepo := buildAuditLogUC(
		auditEntry("admin-1", entity.AuditActionCreate, "license"),
		auditEntry("admin-1", entity.AuditActionDelete, "license"),
		auditEntry("officer-1", entity.AuditActionCreate, "remittance"),
	)

	out, err := uc.List(adminActor, dto.AuditLogListFilter{
		UserID:     "admin-1",
		Action:     entity.AuditActionCreate,
		EntityType: "license",
	}, dto.PageRequest{Limit: 5, Offset: 10})

	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "admin-1", auditRepo.lastFilter.UserID)
	assert.Equal(t, entity.AuditActionCreate, auditRepo.lastFilter.Action)
	assert.Equal(t, "license", auditRepo.lastFilter.EntityType)
	assert.Equal(t, 5, auditRepo.lastLimit)
	assert.Equal(t, 10, auditRepo.lastOffset)
}

func TestAuditLogList_ClienteProhibido(t *testing.T) {
	uc, auditRepo := buildAuditLogUC(auditEntry("admin-1", entity.AuditActionCreate, "license"))

	_, err := uc.List(clientActor, dto.AuditLogListFilter{}, dto.PageRequest{})

	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, auditRepo.lastLimit)
}

func TestAuditLogList_SinAutenticar(t *testing.T) {
	uc, _ := buildAuditLogUC()

	_, err := uc.List(entity.Actor{}, dto.AuditLogListFilter{}, dto.PageRequest{})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
