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

func buildLicenseUC(t *testing.T) (*usecase.LicenseUseCase, *fakeLicenseRepo, *fakeAuditRepo) {
	t.Helper()
	licRepo := newFakeLicenseRepo()
	companyRepo := newFakeCompanyRepo(testCompany("co-1", "Acme Ltd"), testCompany("co-2", "Beta SA"))
	auditRepo := &fakeAuditRepo{}
	return usecase.NewLicenseUseCase(licRepo, companyRepo, testRecorder(auditRepo)), licRepo, auditRepo
}

func licenseIn(companyID string, expiration time.Time) dto.LicenseRequest {
	return dto.LicenseRequest{
		CompanyID:      companyID,
		LicenseType:    "PENCOM",
		IssuingBody:    "PENCOM Authority",
		IssueDate:      expiration.AddDate(-1, 0, 0).Format(dto.DateLayout),
		ExpirationDate: expiration.Format(dto.DateLayout),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — derivación de estado y auditoría
// ──────────────────────────────────────────────────────────────────────────────

// El estado nunca lo fija el llamador: se deriva de expiration_date.
// Vencimiento a 15 días → PENDING_RENEWAL.
func TestLicenseCreate_EstadoDerivado_PorRenovar(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	out, err := uc.Create(officerActor, licenseIn("co-1", time.Now().AddDate(0, 0, 15)))
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseStatusPendingRenewal, out.Status,
		"una licencia que vence en 15 días debe quedar PENDING_RENEWAL")
	assert.Equal(t, "Acme Ltd", out.CompanyName)
}

// Vencimiento en el pasado → EXPIRED desde la creación.
func TestLicenseCreate_EstadoDerivado_Vencida(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	out, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(0, 0, -3)))
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseStatusExpired, out.Status)
}

// Toda creación exitosa genera exactamente una entrada de auditoría con los
// campos distintivos y la IP del actor.
func TestLicenseCreate_GeneraAuditoria(t *testing.T) {
	uc, _, auditRepo := buildLicenseUC(t)

	out, err := uc.Create(officerActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	require.Len(t, auditRepo.entries, 1)
	entry := auditRepo.entries[0]
	assert.Equal(t, entity.AuditActionCreate, entry.Action)
	assert.Equal(t, entity.AuditEntityLicense, entry.EntityType)
	assert.Equal(t, out.ID, entry.EntityID)
	assert.Equal(t, "officer-1", entry.UserID)
	assert.Equal(t, "10.0.0.2", entry.IPAddress)
	assert.Equal(t, "Created license: PENCOM for Acme Ltd", entry.Details)
}

// client no puede crear licencias aunque pertenezca a la empresa.
func TestLicenseCreate_ClienteProhibido(t *testing.T) {
	uc, _, auditRepo := buildLicenseUC(t)

	_, err := uc.Create(clientActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, auditRepo.entries, "una operación rechazada no debe auditarse")
}

func TestLicenseCreate_SinAutenticar(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	_, err := uc.Create(entity.Actor{}, licenseIn("co-1", time.Now()))

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Empresa inexistente → ErrNotFound, sin crear ni auditar.
func TestLicenseCreate_EmpresaInexistente(t *testing.T) {
	uc, licRepo, auditRepo := buildLicenseUC(t)

	_, err := uc.Create(adminActor, licenseIn("co-nope", time.Now().AddDate(1, 0, 0)))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, licRepo.licenses)
	assert.Empty(t, auditRepo.entries)
}

// Fecha malformada → ErrInvalidInput.
func TestLicenseCreate_FechaInvalida(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	in := licenseIn("co-1", time.Now())
	in.ExpirationDate = "15/03/2026"
	_, err := uc.Create(adminActor, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — re-derivación de estado
// ──────────────────────────────────────────────────────────────────────────────

// Al actualizar, el estado se recalcula con el nuevo expiration_date.
func TestLicenseUpdate_RecalculaEstado(t *testing.T) {
	uc, _, auditRepo := buildLicenseUC(t)

	created, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(0, 0, -10)))
	require.NoError(t, err)
	require.Equal(t, entity.LicenseStatusExpired, created.Status)

	updated, err := uc.Update(adminActor, created.ID, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	assert.Equal(t, entity.LicenseStatusActive, updated.Status,
		"renovar el vencimiento debe reactivar la licencia")
	assert.Len(t, auditRepo.entries, 2, "create + update deben auditarse")
	assert.Equal(t, entity.AuditActionUpdate, auditRepo.entries[1].Action)
}

func TestLicenseUpdate_NoExiste(t *testing.T) {
	uc, _, auditRepo := buildLicenseUC(t)

	_, err := uc.Update(adminActor, "lic-nope", licenseIn("co-1", time.Now().AddDate(1, 0, 0)))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, auditRepo.entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — lectura previa y auditoría condicional
// ──────────────────────────────────────────────────────────────────────────────

func TestLicenseDelete_AuditaConDetalle(t *testing.T) {
	uc, licRepo, auditRepo := buildLicenseUC(t)

	created, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(adminActor, created.ID))

	assert.Empty(t, licRepo.licenses)
	require.Len(t, auditRepo.entries, 2)
	assert.Equal(t, entity.AuditActionDelete, auditRepo.entries[1].Action)
	assert.Equal(t, "Deleted license: PENCOM for Acme Ltd", auditRepo.entries[1].Details)
}

// Borrar algo inexistente devuelve NotFound y NO genera entrada de auditoría.
func TestLicenseDelete_NoExiste_SinAuditoria(t *testing.T) {
	uc, _, auditRepo := buildLicenseUC(t)

	err := uc.Delete(adminActor, "lic-nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, auditRepo.entries)
}

// compliance_officer no puede eliminar (solo admin).
func TestLicenseDelete_OficialProhibido(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	created, err := uc.Create(officerActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	err = uc.Delete(officerActor, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — scoping por visibilidad del llamador
// ──────────────────────────────────────────────────────────────────────────────

// Un client siempre queda acotado a su propia empresa, incluso si pide otra.
func TestLicenseList_ClienteAcotadoASuEmpresa(t *testing.T) {
	uc, licRepo, _ := buildLicenseUC(t)

	_, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)
	_, err = uc.Create(adminActor, licenseIn("co-2", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	out, err := uc.List(clientActor, dto.LicenseListFilter{CompanyID: "co-2"})
	require.NoError(t, err)

	assert.Equal(t, "co-1", licRepo.lastFilter.CompanyID,
		"el filtro pedido por el client debe reemplazarse por su propia empresa")
	require.Len(t, out.Items, 1)
	assert.Equal(t, "co-1", out.Items[0].CompanyID)
}

// Un client sin empresa afiliada recibe lista vacía, nunca error ni datos ajenos.
func TestLicenseList_ClienteSinEmpresa_Vacio(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	_, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	out, err := uc.List(orphanClient, dto.LicenseListFilter{})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

// admin y compliance_officer ven todas las empresas.
func TestLicenseList_StaffVeTodo(t *testing.T) {
	uc, _, _ := buildLicenseUC(t)

	_, err := uc.Create(adminActor, licenseIn("co-1", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)
	_, err = uc.Create(adminActor, licenseIn("co-2", time.Now().AddDate(1, 0, 0)))
	require.NoError(t, err)

	out, err := uc.List(officerActor, dto.LicenseListFilter{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
