package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

func buildRemittanceUC(t *testing.T) (*usecase.RemittanceUseCase, *fakeRemittanceRepo, *fakeAuditRepo) {
	t.Helper()
	remRepo := newFakeRemittanceRepo()
	companyRepo := newFakeCompanyRepo(testCompany("co-1", "Acme Ltd"))
	auditRepo := &fakeAuditRepo{}
	return usecase.NewRemittanceUseCase(remRepo, companyRepo, testRecorder(auditRepo)), remRepo, auditRepo
}

func remittanceIn(status string) dto.RemittanceRequest {
	amount := decimal.NewFromInt(250000)
	return dto.RemittanceRequest{
		CompanyID:      "co-1",
		RemittanceType: "PAYE",
		Period:         "2026-01",
		Month:          1,
		Year:           2026,
		Amount:         &amount,
		Status:         status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Status vacío en creación equivale a PENDING.
func TestRemittanceCreate_StatusPorDefecto(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	out, err := uc.Create(officerActor, remittanceIn(""))
	require.NoError(t, err)

	assert.Equal(t, entity.RemittanceStatusPending, out.Status,
		"sin status explícito la remesa debe quedar PENDING")
}

// A diferencia de las licencias, el llamador sí puede fijar el status.
func TestRemittanceCreate_StatusExplicito(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	out, err := uc.Create(adminActor, remittanceIn(entity.RemittanceStatusVerified))
	require.NoError(t, err)

	assert.Equal(t, entity.RemittanceStatusVerified, out.Status)
}

func TestRemittanceCreate_StatusInvalido(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	_, err := uc.Create(adminActor, remittanceIn("APPROVED"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemittanceCreate_MesFueraDeRango(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	in := remittanceIn("")
	in.Month = 13
	_, err := uc.Create(adminActor, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemittanceCreate_GeneraAuditoria(t *testing.T) {
	uc, _, auditRepo := buildRemittanceUC(t)

	out, err := uc.Create(officerActor, remittanceIn(""))
	require.NoError(t, err)

	require.Len(t, auditRepo.entries, 1)
	entry := auditRepo.entries[0]
	assert.Equal(t, entity.AuditActionCreate, entry.Action)
	assert.Equal(t, entity.AuditEntityRemittance, entry.EntityType)
	assert.Equal(t, out.ID, entry.EntityID)
	assert.Equal(t, "Created remittance: PAYE 2026-01 for Acme Ltd", entry.Details)
}

// El monto es opcional: nil persiste como NULL.
func TestRemittanceCreate_MontoOpcional(t *testing.T) {
	uc, remRepo, _ := buildRemittanceUC(t)

	in := remittanceIn("")
	in.Amount = nil
	out, err := uc.Create(adminActor, in)
	require.NoError(t, err)

	assert.Nil(t, out.Amount)
	assert.False(t, remRepo.remittances[out.ID].Amount.Valid)
}

func TestRemittanceCreate_ClienteProhibido(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	_, err := uc.Create(clientActor, remittanceIn(""))

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

// En update, status vacío conserva el status actual en vez de resetearlo.
func TestRemittanceUpdate_StatusVacioConserva(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	created, err := uc.Create(adminActor, remittanceIn(entity.RemittanceStatusSubmitted))
	require.NoError(t, err)

	updated, err := uc.Update(adminActor, created.ID, remittanceIn(""))
	require.NoError(t, err)

	assert.Equal(t, entity.RemittanceStatusSubmitted, updated.Status)
}

func TestRemittanceUpdate_NoExiste(t *testing.T) {
	uc, _, auditRepo := buildRemittanceUC(t)

	_, err := uc.Update(adminActor, "rem-nope", remittanceIn(""))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, auditRepo.entries)
}

func TestRemittanceDelete_NoExiste_SinAuditoria(t *testing.T) {
	uc, _, auditRepo := buildRemittanceUC(t)

	err := uc.Delete(adminActor, "rem-nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, auditRepo.entries)
}

func TestRemittanceDelete_SoloAdmin(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	created, err := uc.Create(officerActor, remittanceIn(""))
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(officerActor, created.ID), domain.ErrForbidden)
	assert.NoError(t, uc.Delete(adminActor, created.ID))
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestRemittanceList_ClienteSinEmpresa_Vacio(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	_, err := uc.Create(adminActor, remittanceIn(""))
	require.NoError(t, err)

	out, err := uc.List(orphanClient, dto.RemittanceListFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestRemittanceList_FiltroPorPeriodo(t *testing.T) {
	uc, _, _ := buildRemittanceUC(t)

	_, err := uc.Create(adminActor, remittanceIn(""))
	require.NoError(t, err)
	otro := remittanceIn("")
	otro.Period = "2025-12"
	otro.Month = 12
	otro.Year = 2025
	_, err = uc.Create(adminActor, otro)
	require.NoError(t, err)

	out, err := uc.List(adminActor, dto.RemittanceListFilter{Year: 2025, Month: 12})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "2025-12", out.Items[0].Period)
}
