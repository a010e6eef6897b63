package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/frabecrazy/digital-footprint/internal/api"
	"github.com/frabecrazy/digital-footprint/internal/community"
	"github.com/frabecrazy/digital-footprint/internal/config"
	"github.com/frabecrazy/digital-footprint/internal/footprint"
	"github.com/frabecrazy/digital-footprint/internal/logging"
	"github.com/frabecrazy/digital-footprint/internal/tui"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:     "footprint",
		Short:   "Digital carbon footprint calculator",
		Long:    "Estimate your yearly digital carbon footprint and compare it with the community median.",
		Version: version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(configPath, debug)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "footprint.yaml", "path to the YAML configuration file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newServeCmd(&configPath, &debug), newMediansCmd(&configPath, &debug))
	return cmd
}

func newServeCmd(configPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(*configPath, *debug)
			if err != nil {
				return err
			}
			stats, err := buildStats(cfg, log)
			if err != nil {
				return err
			}

			calc := &footprint.Calculator{Policy: cfg.Policy(), Days: cfg.Days}
			server := api.New(calc, stats, log)
			return server.Run(cmd.Context(), cfg.Listen)
		},
	}
}

func newMediansCmd(configPath *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "medians",
		Short: "Print the community medians",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup(*configPath, *debug)
			if err != nil {
				return err
			}
			stats, err := buildStats(cfg, log)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			medians, err := stats.Medians(ctx)
			if errors.Is(err, community.ErrNoData) {
				cmd.Println("No community data available yet.")
				return nil
			}
			if err != nil {
				return err
			}

			for _, col := range community.MetricColumns {
				if v, ok := medians[col]; ok {
					cmd.Printf("%-32s %10.2f kg CO2e/year\n", col, v)
				} else {
					cmd.Printf("%-32s %10s\n", col, "unavailable")
				}
			}
			return nil
		},
	}
}

func runTUI(configPath string, debug bool) error {
	cfg, log, err := setup(configPath, debug)
	if err != nil {
		return err
	}
	stats, err := buildStats(cfg, log)
	if err != nil {
		return err
	}

	calc := &footprint.Calculator{Policy: cfg.Policy(), Days: cfg.Days}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	model := tui.New(calc, stats, rng, log)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func setup(configPath string, debug bool) (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, zerolog.Logger{}, err
	}
	if debug {
		cfg.Log.Level = "debug"
	}
	log := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	return cfg, log, nil
}

// buildStats wires the configured store backend into a statistics service.
func buildStats(cfg config.Config, log zerolog.Logger) (*community.Service, error) {
	var store community.Store
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		s, err := community.OpenSQLiteStore(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		store = s
	case config.BackendCSV:
		store = community.NewCSVStore(cfg.Store.Path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	log.Debug().Str("backend", cfg.Store.Backend).Str("path", cfg.Store.Path).Msg("community store ready")
	return community.NewService(store, log), nil
}
