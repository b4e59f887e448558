package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/adapter"
	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/handler"
	"github.com/MKhiriev/occupa-lo-studente/internal/handler/http"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/server"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
	"github.com/MKhiriev/occupa-lo-studente/internal/utils"
	"github.com/MKhiriev/occupa-lo-studente/internal/validators"
	"github.com/MKhiriev/occupa-lo-studente/internal/workers"
	"github.com/MKhiriev/occupa-lo-studente/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	for _, line := range buildInfo.Lines() {
		fmt.Println(line)
	}

	log := logger.NewLogger("occupa-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	// a version injected at link time wins over configuration
	if v := buildInfo.BuildVersion(); v != "" {
		cfg.App.Version = v
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	repos := store.NewRepositories(db, log)

	client := utils.NewHTTPClient(cfg.Adapter.RequestTimeout)
	mailWorker := workers.NewMailWorker(adapter.NewSMTPMailer(cfg.Mail, cfg.Adapter.RequestTimeout, log), 0, 0, 0, log)

	services, err := service.NewServices(repos, service.Adapters{
		Captcha: adapter.NewRecaptcha(cfg.Adapter, client, log),
		OAuth:   adapter.NewGoogleOAuth(cfg.Adapter, client, log),
		Mail:    mailWorker,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	schemas := validators.NewSchemas(validators.Dependencies{
		Prober:      adapter.NewURLProber(utils.NewHTTPClient(cfg.Adapter.RequestTimeout), cfg.App.ProbeURLs, log),
		Agencies:    repos.Agencies,
		EmailSuffix: cfg.App.EmailSuffix,
		Now:         time.Now,
	})

	limiter, err := http.NewRateLimiter(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}
	if closer, ok := limiter.(io.Closer); ok {
		defer closer.Close()
	}

	handlers, err := handler.NewHandlers(handler.Dependencies{
		Services: services,
		Schemas:  schemas,
		Limiter:  limiter,
		Database: db,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// background work outlives the servers so queued mail is still sent
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	background := []workers.Worker{mailWorker}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}
	pool := workers.NewWorkers(background...)
	pool.Run(workersCtx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}

	stopWorkers()
	pool.Wait()
	log.Info().Msg("workers stopped")
}
