// Package pdf genera el reporte de licencias en PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empresa | Tipo | Ente emisor | Emisión | Venc. | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de licencias listadas                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cumplimiento-api/internal/application/reports"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 220, Green: 38, Blue: 38}
	colorWarning = &props.Color{Red: 217, Green: 119, Blue: 6}
	colorOK      = &props.Color{Red: 22, Green: 163, Blue: 74}
)

var _ reports.LicenseReportGenerator = (*MarotoLicenseReport)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoLicenseReport implementa reports.LicenseReportGenerator usando Maroto v2.
type MarotoLicenseReport struct{}

// NewMarotoLicenseReport construye el generador.
func NewMarotoLicenseReport() *MarotoLicenseReport { return &MarotoLicenseReport{} }

// GenerateLicenseReport genera el PDF y devuelve sus bytes.
func (g *MarotoLicenseReport) GenerateLicenseReport(_ context.Context, licenses []*entity.License, generatedAt string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Licencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLicenseRows(licenses) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(len(licenses)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE LICENCIAS Y PERMISOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Seguimiento de cumplimiento regulatorio", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de licencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Empresa", 3, align.Left),
		h("Tipo", 2, align.Left),
		h("Ente emisor", 2, align.Left),
		h("Emisión", 1, align.Center),
		h("Vencimiento", 2, align.Center),
		h("Estado", 2, align.Center),
	)
}

// tableLicenseRows: una fila por licencia, con el estado coloreado por severidad.
func tableLicenseRows(licenses []*entity.License) []core.Row {
	result := make([]core.Row, 0, len(licenses))
	for _, l := range licenses {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				l.CompanyName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.LicenseType,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.IssuingBody,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.IssueDate.Format("02/01/2006"),
				props.Text{Size: 7, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.ExpirationDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(l.Status),
				props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center,
					Top: 1, Color: statusColor(l.Status),
				},
			)),
		))
	}
	return result
}

// summaryRow: total de licencias incluidas en el reporte.
func summaryRow(total int) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de licencias: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Top: 3, Right: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusColor(status string) *props.Color {
	switch status {
	case entity.LicenseStatusExpired:
		return colorDanger
	case entity.LicenseStatusPendingRenewal:
		return colorWarning
	default:
		return colorOK
	}
}

func statusLabel(status string) string {
	switch status {
	case entity.LicenseStatusExpired:
		return "Vencida"
	case entity.LicenseStatusPendingRenewal:
		return "Por renovar"
	case entity.LicenseStatusActive:
		return "Activa"
	}
	return status
}
