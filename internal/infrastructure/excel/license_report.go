// Package excel genera el reporte de licencias en formato XLSX.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/reports"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

var _ reports.LicenseReportGenerator = (*ExcelLicenseReport)(nil)

const sheetName = "Licencias"

// ExcelLicenseReport implementa reports.LicenseReportGenerator usando excelize.
type ExcelLicenseReport struct{}

// NewExcelLicenseReport construye el generador.
func NewExcelLicenseReport() *ExcelLicenseReport { return &ExcelLicenseReport{} }

// GenerateLicenseReport genera el XLSX y devuelve sus bytes.
func (g *ExcelLicenseReport) GenerateLicenseReport(_ context.Context, licenses []*entity.License, generatedAt string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	headers := []string{"Empresa", "Tipo de licencia", "Ente emisor", "Fecha de emisión", "Fecha de vencimiento", "Estado", "Notas"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, l := range licenses {
		rowN := i + 2
		values := []any{
			l.CompanyName,
			l.LicenseType,
			l.IssuingBody,
			l.IssueDate.Format("02/01/2006"),
			l.ExpirationDate.Format("02/01/2006"),
			l.Status,
			l.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowN)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("excel: escribir fila %d: %w", rowN, err)
			}
		}
	}

	// Pie con la fecha de generación, separado de los datos por una fila.
	footerCell, _ := excelize.CoordinatesToCellName(1, len(licenses)+3)
	if err := f.SetCellValue(sheetName, footerCell, "Generado: "+generatedAt); err != nil {
		return nil, fmt.Errorf("excel: escribir pie: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "C", 24); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}
	if err := f.SetColWidth(sheetName, "D", "F", 18); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}
	if err := f.SetColWidth(sheetName, "G", "G", 40); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar documento: %w", err)
	}
	return buf.Bytes(), nil
}
