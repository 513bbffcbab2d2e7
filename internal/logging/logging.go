// Package logging builds the logrus logger shared by services and commands
package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-combat-core/internal/config"
	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

// New creates a logger writing to out with the configured level and format
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidConfig, "invalid log level")
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}

	return logger, nil
}
