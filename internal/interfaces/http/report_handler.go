package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/reports"
)

// ReportHandler exporta el listado de licencias a PDF y Excel.
type ReportHandler struct {
	uc *reports.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ExportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ExportPDF godoc
// @Summary      Exportar licencias a PDF
// @Tags         reports
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        company_id    query  string  false  "Filtrar por empresa"
// @Param        license_type  query  string  false  "Filtrar por tipo"
// @Param        status        query  string  false  "Filtrar por estado"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/licenses/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, reports.FormatPDF, "application/pdf")
}

// ExportExcel godoc
// @Summary      Exportar licencias a Excel
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        company_id    query  string  false  "Filtrar por empresa"
// @Param        license_type  query  string  false  "Filtrar por tipo"
// @Param        status        query  string  false  "Filtrar por estado"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/reports/licenses/excel [get]
func (h *ReportHandler) ExportExcel(c *fiber.Ctx) error {
	return h.export(c, reports.FormatExcel, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *ReportHandler) export(c *fiber.Ctx, format, contentType string) error {
	var f dto.LicenseListFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	doc, filename, err := h.uc.ExportLicenses(c.Context(), GetActor(c), format, f)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(doc)
}
