package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
)

// RemittanceHandler maneja las peticiones HTTP para el recurso Remittance.
type RemittanceHandler struct {
	uc *usecase.RemittanceUseCase
}

// NewRemittanceHandler construye el handler inyectando el caso de uso.
func NewRemittanceHandler(uc *usecase.RemittanceUseCase) *RemittanceHandler {
	return &RemittanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar remesas
// @Tags         remittances
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        status      query  string  false  "Filtrar por estado"
// @Param        year        query  int     false  "Filtrar por año"
// @Param        month       query  int     false  "Filtrar por mes"
// @Success      200  {object}  dto.RemittanceListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/remittances [get]
func (h *RemittanceHandler) List(c *fiber.Ctx) error {
	var f dto.RemittanceListFilter
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
// @Summary      Crear remesa
// @Tags         remittances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RemittanceRequest  true  "Datos de la remesa"
// @Success      201   {object}  dto.RemittanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/remittances [post]
func (h *RemittanceHandler) Create(c *fiber.Ctx) error {
	var in dto.RemittanceRequest
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
// @Summary      Actualizar remesa
// @Tags         remittances
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID de la remesa"
// @Param        body  body  dto.RemittanceRequest  true  "Datos de la remesa"
// @Success      200   {object}  dto.RemittanceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remittances/{id} [put]
func (h *RemittanceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RemittanceRequest
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
// @Summary      Eliminar remesa
// @Tags         remittances
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la remesa"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remittances/{id} [delete]
func (h *RemittanceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
