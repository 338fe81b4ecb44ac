// Package reports exporta el listado de licencias a PDF y Excel.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/domain"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
	"github.com/jhoicas/cumplimiento-api/internal/domain/repository"
)

// Formatos de exportación soportados.
const (
	FormatPDF   = "pdf"
	FormatExcel = "excel"
)

// ExportUseCase genera el reporte de licencias con los mismos filtros y
// scoping de visibilidad que el listado, y audita cada exportación.
type ExportUseCase struct {
	licenseRepo repository.LicenseRepository
	pdf         LicenseReportGenerator
	excel       LicenseReportGenerator
	recorder    *audit.Recorder
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(licenseRepo repository.LicenseRepository, pdf, excel LicenseReportGenerator, recorder *audit.Recorder) *ExportUseCase {
	return &ExportUseCase{licenseRepo: licenseRepo, pdf: pdf, excel: excel, recorder: recorder}
}

// ExportLicenses genera el reporte en el formato pedido. Devuelve los bytes
// del documento y el nombre de archivo sugerido.
func (uc *ExportUseCase) ExportLicenses(ctx context.Context, actor entity.Actor, format string, f dto.LicenseListFilter) ([]byte, string, error) {
	if !actor.Authenticated() || !actor.CanView() {
		return nil, "", domain.ErrUnauthorized
	}
	var gen LicenseReportGenerator
	switch format {
	case FormatPDF:
		gen = uc.pdf
	case FormatExcel:
		gen = uc.excel
	default:
		return nil, "", fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}

	companyID, none := actor.ScopeCompany(f.CompanyID)
	var licenses []*entity.License
	if !none {
		var err error
		licenses, err = uc.licenseRepo.List(repository.LicenseFilter{
			CompanyID:   companyID,
			LicenseType: f.LicenseType,
			Status:      f.Status,
		})
		if err != nil {
			return nil, "", err
		}
	}

	now := time.Now()
	doc, err := gen.GenerateLicenseReport(ctx, licenses, now.Format("02/01/2006 15:04"))
	if err != nil {
		return nil, "", fmt.Errorf("reports: generar %s: %w", format, err)
	}

	detail := "Exported licenses to PDF"
	ext := "pdf"
	if format == FormatExcel {
		detail = "Exported licenses to Excel"
		ext = "xlsx"
	}
	if err := uc.recorder.Record(actor, entity.AuditActionExport, entity.AuditEntityLicense, "", detail); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("licenses_report_%s.%s", now.Format("20060102_150405"), ext)
	return doc, filename, nil
}
