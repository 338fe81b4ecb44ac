package entity

// Roles válidos para User.
const (
	RoleAdmin             = "admin"
	RoleComplianceOfficer = "compliance_officer"
	RoleClient            = "client"
)

// Actor identidad del llamador extraída del token JWT. Role vacío = no autenticado.
type Actor struct {
	UserID    string
	CompanyID string // empresa afiliada; solo relevante para rol client
	Role      string
	IP        string // dirección remota, para el audit trail
}

// Authenticated indica si hay un llamador identificado.
func (a Actor) Authenticated() bool {
	return a.UserID != "" && a.Role != ""
}

// CanView indica si el rol puede consultar registros.
// Cualquier rol autenticado del dominio puede ver (su visibilidad se acota aparte).
func (a Actor) CanView() bool {
	switch a.Role {
	case RoleAdmin, RoleComplianceOfficer, RoleClient:
		return true
	}
	return false
}

// CanEdit indica si el rol puede crear o actualizar registros.
func (a Actor) CanEdit() bool {
	return a.Role == RoleAdmin || a.Role == RoleComplianceOfficer
}

// CanDelete indica si el rol puede eliminar registros.
func (a Actor) CanDelete() bool {
	return a.Role == RoleAdmin
}

// ScopeCompany resuelve el filtro efectivo de empresa para listados y lecturas.
//
//   - client con empresa afiliada: siempre su propia empresa, ignora requested.
//   - client sin empresa afiliada: none=true, el resultado debe ser vacío.
//   - admin / compliance_officer: el filtro explícito que pida el llamador (puede ser "").
func (a Actor) ScopeCompany(requested string) (companyID string, none bool) {
	if a.Role == RoleClient {
		if a.CompanyID == "" {
			return "", true
		}
		return a.CompanyID, false
	}
	return requested, false
}
