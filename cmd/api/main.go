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

	"github.com/jhoicas/gst-invoice/internal/application/billing"
	infralogo "github.com/jhoicas/gst-invoice/internal/infrastructure/logo"
	"github.com/jhoicas/gst-invoice/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/gst-invoice/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/gst-invoice/internal/interfaces/http"
	"github.com/jhoicas/gst-invoice/pkg/config"
	"github.com/jhoicas/gst-invoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()

	// Borradores en memoria: se descartan tras DRAFT_TTL_MINUTES sin actividad.
	draftRepo := memory.NewDraftRepository(time.Now)
	draftRepo.StartJanitor(ctx, cfg.Draft.SweepInterval(), cfg.Draft.TTL(), log.Named("janitor"))

	draftUC := billing.NewDraftUseCase(
		draftRepo,
		infralogo.NewLoader(),
		billing.SessionConfig{
			Secret:     cfg.Session.Secret,
			Issuer:     cfg.Session.Issuer,
			ExpMinutes: cfg.Session.Expiration,
		},
		time.Now,
		log.Named("drafts"),
	)

	// PDF: A4 vertical con la configuración fija de exportación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Export, log.Named("pdf"))
	exportUC := billing.NewExportUseCase(draftRepo, pdfGenerator, cfg.Export.FileName, log.Named("export"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.BodyLimit(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "GST Invoice API",
			}))
		} else {
			log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "drafts": draftRepo.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DraftUC:       draftUC,
		ExportUC:      exportUC,
		SessionSecret: cfg.Session.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stopJanitor()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
