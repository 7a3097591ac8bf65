// Package logger provides a global logger for the application
package logger

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"go.uber.org/zap"
)

var Logger *zap.Logger

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
		Logger = zap.Must(zap.NewDevelopment())
	case "prod":
		logLevel = zerolog.InfoLevel
		Logger = zap.Must(zap.NewProduction())
	default:
		logLevel = zerolog.InfoLevel
		Logger = zap.Must(zap.NewProduction())
		log.Warn().Str("environment", environment).Msg("Unknown environment - defaulting to production log level (info and above)")
	}

	if level := strings.ToLower(os.Getenv("LOG_LEVEL")); level != "" {
		if parsed, err := zerolog.ParseLevel(level); err == nil {
			logLevel = parsed
		} else {
			log.Warn().Str("LOG_LEVEL", level).Msg("Invalid LOG_LEVEL environment variable, keeping environment default")
		}
	}

	// Apply the log level globally
	zerolog.SetGlobalLevel(logLevel)

	log.Debug().Str("environment", environment).Str("level", logLevel.String()).Msg("logger initialized")
}

// Init initializes the logger from the environment.
// It sets up the global logger to use zerolog with console output.
// Example usage:
//
//	logger.Init() <- inside whichever main() function in your entrypoint
func Init() {
	initLogger()
}

// Sugar returns a sugared logger for easier use
// TODO: replace with zerolog
func Sugar() *zap.SugaredLogger {
	if Logger == nil {
		Logger = zap.Must(zap.NewProduction())
	}
	return Logger.Sugar()
}
