package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meurig/clic/internal/config"
)

var version = "dev"

var (
	configFlag string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "clic",
	Short: "Resolve S4C Clic catalogue pages into playable metadata",
	Long: `clic - S4C Clic catalogue resolver

Resolves series and programme pages from the Clic player into
normalized records: title, season and episode, broadcast dates,
streaming formats and subtitles.

Examples:
  clic resolve https://www.s4c.cymru/clic/programme/861514621
  clic parse "Rownd a Rownd - Cyfres 23"
  clic date "15 Ionawr 2021"`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("clic {{.Version}}\n")
}

// loadConfig resolves the effective configuration: the --config flag wins,
// then the discovery chain, then compiled-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	path, err := config.Discover()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return config.Load(path)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
