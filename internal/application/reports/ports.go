package reports

import (
	"context"

	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// LicenseReportGenerator puerto de generación del reporte de licencias en un
// formato concreto (PDF, Excel). Devuelve los bytes del documento.
type LicenseReportGenerator interface {
	GenerateLicenseReport(ctx context.Context, licenses []*entity.License, generatedAt string) ([]byte, error)
}
