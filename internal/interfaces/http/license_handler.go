package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
)

// LicenseHandler maneja las peticiones HTTP para el recurso License.
type LicenseHandler struct {
	uc *usecase.LicenseUseCase
}

// NewLicenseHandler construye el handler inyectando el caso de uso.
func NewLicenseHandler(uc *usecase.LicenseUseCase) *LicenseHandler {
	return &LicenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar licencias
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        company_id    query  string  false  "Filtrar por empresa"
// @Param        license_type  query  string  false  "Filtrar por tipo"
// @Param        status        query  string  false  "Filtrar por estado"
// @Success      200  {object}  dto.LicenseListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/licenses [get]
func (h *LicenseHandler) List(c *fiber.Ctx) error {
	var f dto.LicenseListFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(GetActor(c), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.LicenseRequest  true  "Datos de la licencia"
// @Success      201   {object}  dto.LicenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/licenses [post]
func (h *LicenseHandler) Create(c *fiber.Ctx) error {
	var in dto.LicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar licencia
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string              true  "ID de la licencia"
// @Param        body  body  dto.LicenseRequest  true  "Datos de la licencia"
// @Success      200   {object}  dto.LicenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [put]
func (h *LicenseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.LicenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar licencia
// @Tags         licenses
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la licencia"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/licenses/{id} [delete]
func (h *LicenseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
