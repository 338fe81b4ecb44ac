package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/cumplimiento-api/internal/application/analytics"
	"github.com/jhoicas/cumplimiento-api/internal/application/audit"
	"github.com/jhoicas/cumplimiento-api/internal/application/auth"
	"github.com/jhoicas/cumplimiento-api/internal/application/notify"
	"github.com/jhoicas/cumplimiento-api/internal/application/reports"
	"github.com/jhoicas/cumplimiento-api/internal/application/usecase"
	infraemail "github.com/jhoicas/cumplimiento-api/internal/infrastructure/email"
	infraexcel "github.com/jhoicas/cumplimiento-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/cumplimiento-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cumplimiento-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cumplimiento-api/internal/interfaces/http"
	"github.com/jhoicas/cumplimiento-api/pkg/config"
	"github.com/jhoicas/cumplimiento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	remittanceRepo := postgres.NewRemittanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	recorder := audit.NewRecorder(auditRepo, log.Zerolog())

	companyUC := usecase.NewCompanyUseCase(companyRepo, recorder)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, companyRepo, recorder)
	remittanceUC := usecase.NewRemittanceUseCase(remittanceRepo, companyRepo, recorder)
	userUC := usecase.NewUserUseCase(userRepo, companyRepo, recorder)
	auditUC := usecase.NewAuditLogUseCase(auditRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(userRepo, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Reportes: PDF (Maroto) y Excel (excelize)
	pdfGenerator := infrapdf.NewMarotoLicenseReport()
	excelGenerator := infraexcel.NewExcelLicenseReport()
	exportUC := reports.NewExportUseCase(licenseRepo, pdfGenerator, excelGenerator, recorder)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cumplimiento API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		LicenseUC:    licenseUC,
		RemittanceUC: remittanceUC,
		UserUC:       userUC,
		AuditUC:      auditUC,
		DashboardUC:  dashboardUC,
		ExportUC:     exportUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	// Job de recordatorios de vencimiento por correo
	reminderCtx, stopReminder := context.WithCancel(ctx)
	defer stopReminder()
	if cfg.Reminder.Enabled {
		mailer, err := infraemail.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente SMTP")
		}
		reminderUC := notify.NewReminderUseCase(licenseRepo, userRepo, mailer, cfg.Reminder.Days, log.Zerolog())
		go runReminderJob(reminderCtx, reminderUC, cfg.Reminder.IntervalHours, log)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopReminder()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// runReminderJob ejecuta el barrido de recordatorios al arrancar y luego cada
// intervalo configurado, hasta que el contexto se cancele.
func runReminderJob(ctx context.Context, uc *notify.ReminderUseCase, intervalHours int, log *logger.Logger) {
	if intervalHours <= 0 {
		intervalHours = 24
	}
	run := func() {
		// Misma frontera de día que el clasificador de estados: medianoche UTC.
		sent, failed, err := uc.Run(ctx, time.Now().UTC())
		if err != nil {
			log.Error().Err(err).Msg("job de recordatorios")
			return
		}
		log.Info().Int("sent", sent).Int("failed", failed).Msg("recordatorios de vencimiento procesados")
	}
	run()

	ticker := time.NewTicker(time.Duration(intervalHours) * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
