package main

import (
	"flag"
	"fmt"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/devnet"
	handler "github.com/MKhiriev/go-pet-locator/internal/handler/http"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/server"
	"github.com/MKhiriev/go-pet-locator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	signer := flag.String("signer", "", "Wallet address to print a session token for")

	log := logger.NewLogger("pet-devnet")
	cfg, err := config.GetDevnetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	d := devnet.New(*cfg, log)

	if *signer != "" {
		session, err := d.Sessions.IssueSession(*signer, handler.DefaultSessionTTL)
		if err != nil {
			log.Fatal().Err(err).Str("signer", *signer).Msg("error issuing dev session")
		}
		fmt.Printf("APP_SESSION_TOKEN=%s\n", session.SignedString)
	}

	srv, err := server.NewServer(handler.NewHandler(d, buildInfo, log).Init(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
