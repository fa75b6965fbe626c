package main

import (
	"fmt"

	"github.com/MKhiriev/go-coll-sync/internal/adapter"
	"github.com/MKhiriev/go-coll-sync/internal/client"
	"github.com/MKhiriev/go-coll-sync/internal/config"
	"github.com/MKhiriev/go-coll-sync/internal/logger"
	"github.com/MKhiriev/go-coll-sync/internal/service"
	"github.com/MKhiriev/go-coll-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-coll-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	collectionClient, err := adapter.NewHTTPCollectionClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create collection client")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, collectionClient, cfg.Sync, log)

	app, err := client.NewApp(services, localStorage, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
