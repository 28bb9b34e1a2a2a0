package logger

import (
	"os"
	"strings"
	"time"

	"github.com/iclubstoree/iclub-financeiro/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Logger utilizável antes de Init, para erros de bootstrap.
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global conforme o ambiente: saída colorida de
// console em desenvolvimento, JSON puro em produção.
func Init(cfg *config.Config) {
	level := parseLevel(cfg.App.LogLevel)
	zerolog.SetGlobalLevel(level)

	if cfg.App.Environment == "production" {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	log = zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
