package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/MedAmineFouzai/BuilderServiceRest/config"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/app"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/database/mongodb"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/mail"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/message-queue/kafka"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/infrastructure/tracing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if config.AppEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()
	}

	db, err := mongodb.ConnectToMongoDB(context.Background(), config.MongoDBConfig.ConnectionURI(), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect from the database")
		}
	}()

	server := app.App{
		DB:     db,
		Config: config,
	}

	if config.KafkaConfig.Enabled() {
		writer := kafka.CreateKafkaWriter(config)
		defer writer.Close()
		server.Publisher = kafka.CreateEventPublisher(writer)
	}

	if config.MailConfig.Enabled() {
		server.Notifier = mail.CreateProjectNotifier(mail.CreateDialer(config.MailConfig), config.MailConfig)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Server stopped")
		}
	}
}
