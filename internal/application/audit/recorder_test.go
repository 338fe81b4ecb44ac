package audit_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

type fakeAuditRepo struct {
	entries []*entity.AuditLog
	fail    error
}

func (r *fakeAuditRepo) Create(l *entity.AuditLog) error {
	if r.fail != nil {
		return r.fail
	}
	r.entries = append(r.entries, l)
	return nil
}

func (r *fakeAuditRepo) List(repository.AuditLogFilter, int, int) ([]*entity.AuditLog, error) {
	return nil, nil
}

func TestRecord_PersisteEntradaCompleta(t *testing.T) {
	repo := &fakeAuditRepo{}
	rec := audit.NewRecorder(repo, zerolog.Nop())
	actor := entity.Actor{UserID: "u-1", Role: entity.RoleAdmin, IP: "192.0.2.4"}

	err := rec.Record(actor, entity.AuditActionCreate, entity.AuditEntityLicense, "l-1", "Created license: PENCOM for Acme Ltd")
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "u-1", entry.UserID)
	assert.Equal(t, entity.AuditActionCreate, entry.Action)
	assert.Equal(t, entity.AuditEntityLicense, entry.EntityType)
	assert.Equal(t, "l-1", entry.EntityID)
	assert.Equal(t, "192.0.2.4", entry.IPAddress)
	assert.False(t, entry.CreatedAt.IsZero())
}

// Un fallo del storage se propaga envuelto: la mutación ya ocurrió, pero el
// llamador debe enterarse de que quedó sin rastro de auditoría.
func TestRecord_FalloSePropaga(t *testing.T) {
	repo := &fakeAuditRepo{fail: errors.New("db caída")}
	rec := audit.NewRecorder(repo, zerolog.Nop())

	err := rec.Record(entity.Actor{UserID: "u-1"}, entity.AuditActionDelete, entity.AuditEntityUser, "u-9", "Deleted user x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit")
}
