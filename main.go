package main

import (
	"os"

	"github.com/kargohub/sendeo-gateway/api"
	"github.com/kargohub/sendeo-gateway/internal/sendeo"
	shipmenttracking "github.com/kargohub/sendeo-gateway/internal/shipment_tracking"
	"github.com/kargohub/sendeo-gateway/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}
	log.Info().Msg("configurations loaded successfully ✅")

	// Create the carrier client
	deliveryService := sendeo.NewService(&config)
	log.Info().Msg("carrier client created successfully ✅")

	// Start the shipment status tracker
	tracker, err := shipmenttracking.NewTracker(deliveryService, config.TrackingPollInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create shipment tracker 😣")
	}
	if err = tracker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start shipment tracker 😣")
	}
	defer tracker.Stop()
	log.Info().Dur("interval", config.TrackingPollInterval).Msg("shipment tracker started ✅")

	server := api.NewServer(&config, deliveryService, tracker)

	if err = server.Start(config.HTTPServerAddress); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
