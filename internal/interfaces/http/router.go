package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cumplimiento-api/internal/application/analytics"
	"github.com/jhoicas/cumplimiento-api/internal/application/auth"
	"github.com/jhoicas/cumplimiento-api/internal/application/reports"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
	"github.com/jhoicas/cumplimiento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CompanyUC    *usecase.CompanyUseCase
	LicenseUC    *usecase.LicenseUseCase
	RemittanceUC *usecase.RemittanceUseCase
	UserUC       *usecase.UserUseCase
	AuditUC      *usecase.AuditLogUseCase
	DashboardUC  *analytics.DashboardUseCase
	ExportUC     *reports.ExportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. El gating por rol se hace en dos capas:
// RequireRole a nivel de ruta y la política del Actor dentro de los use cases.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := []string{entity.RoleAdmin, entity.RoleComplianceOfficer}

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", RequireRole(entity.RoleAdmin), companyHandler.Create)

	// Licenses
	licenses := protected.Group("/licenses")
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	licenses.Get("/", licenseHandler.List)
	licenses.Post("/", RequireRole(staff...), licenseHandler.Create)
	licenses.Put("/:id", RequireRole(staff...), licenseHandler.Update)
	licenses.Delete("/:id", RequireRole(entity.RoleAdmin), licenseHandler.Delete)

	// Remittances
	remittances := protected.Group("/remittances")
	remittanceHandler := NewRemittanceHandler(deps.RemittanceUC)
	remittances.Get("/", remittanceHandler.List)
	remittances.Post("/", RequireRole(staff...), remittanceHandler.Create)
	remittances.Put("/:id", RequireRole(staff...), remittanceHandler.Update)
	remittances.Delete("/:id", RequireRole(entity.RoleAdmin), remittanceHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)

	// Audit trail
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", RequireRole(staff...), auditHandler.List)

	// Reports
	reportHandler := NewReportHandler(deps.ExportUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/licenses/pdf", reportHandler.ExportPDF)
	reportsGroup.Get("/licenses/excel", reportHandler.ExportExcel)

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
