package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/rpg-combat-core/internal/config"
	"github.com/KirkDiggler/rpg-combat-core/internal/logging"
	"github.com/KirkDiggler/rpg-combat-core/internal/services"
	"github.com/KirkDiggler/rpg-combat-core/internal/services/combat"
	"github.com/KirkDiggler/rpg-combat-core/internal/services/shop"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if envErr != nil {
		logger.Debug("No .env file found")
	} else {
		logger.Debug("Loaded .env file")
	}

	if err := run(os.Stdout, cfg, logger, os.Args[1:]); err != nil {
		logger.WithError(err).Error("skirmish failed")
		os.Exit(1)
	}
}

// app bundles what every scenario needs
type app struct {
	out    io.Writer
	cfg    *config.Config
	combat combat.Service
	shop   shop.Service
}

func run(out io.Writer, cfg *config.Config, logger logrus.FieldLogger, names []string) error {
	provider := services.NewProvider(&services.ProviderConfig{
		Logger: logger,
	})

	n := &narrator{out: out}
	for _, eventType := range n.Subscriptions() {
		provider.EventBus.Subscribe(eventType, n)
	}

	a := &app{
		out:    out,
		cfg:    cfg,
		combat: provider.CombatService,
		shop:   provider.ShopService,
	}

	selected, err := selectScenarios(names)
	if err != nil {
		return err
	}

	for i, sc := range selected {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "=== %s ===\n", sc.title)
		if err := sc.play(a); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.name, err)
		}
	}

	return nil
}
