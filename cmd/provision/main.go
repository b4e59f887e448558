// Command provision creates a secretary account.
//
// The database is configured with STORAGE_DB_DATABASE_URI. When -password
// is omitted a password is generated and printed once.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/occupa-lo-studente/internal/config"
	"github.com/MKhiriev/occupa-lo-studente/internal/logger"
	"github.com/MKhiriev/occupa-lo-studente/internal/service"
	"github.com/MKhiriev/occupa-lo-studente/internal/store"
)

const provisionTimeout = 30 * time.Second

func main() {
	var username, password string
	flag.StringVar(&username, "username", "", "Secretary username")
	flag.StringVar(&password, "password", "", "Secretary password (generated when empty)")
	flag.Parse()

	log := logger.NewLogger("occupa-provision")
	if username == "" {
		log.Fatal().Msg("-username is required")
	}

	cfg, err := config.GetStorageConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), provisionTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	repos := store.NewRepositories(db, log)
	secretaries := service.NewSecretaryService(repos.Secretaries, time.Now, log)

	secretary, generated, err := secretaries.Provision(ctx, username, password)
	if err != nil {
		log.Fatal().Err(err).Msg("error provisioning secretary")
	}

	fmt.Fprintf(os.Stdout, "secretary %q created with id %s\n", secretary.Username, secretary.ID)
	if password == "" {
		fmt.Fprintf(os.Stdout, "generated password: %s\n", generated)
	}
}
