package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/dto"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
)

// AuditHandler expone el audit trail (solo admin y compliance_officer).
type AuditHandler struct {
	uc *usecase.AuditLogUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditLogUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar audit trail
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        user_id      query  string  false  "Filtrar por usuario"
// @Param        action       query  string  false  "Filtrar por acción (CREATE, UPDATE, DELETE, EXPORT, LOGIN, LOGOUT)"
// @Param        entity_type  query  string  false  "Filtrar por tipo de entidad"
// @Param        limit        query  int     false  "Límite"  default(20)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AuditLogListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var f dto.AuditLogListFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(GetActor(c), f, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
