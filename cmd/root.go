package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/alquran/config"
	"github.com/s0up4200/alquran/display"
	"github.com/s0up4200/alquran/filter"
	"github.com/s0up4200/alquran/quran"
)

var (
	cfgFile    string
	baseURL    string
	outputFlag string

	cfg       *config.Config
	logger    zerolog.Logger
	api       quran.API
	presets   *filter.Manager
	formatter *display.ConsoleFormatter
	output    display.OutputFormat

	version   = "dev"
	buildTime = "unknown"

	// newAPI builds the API client once config is loaded
	newAPI = func(cfg *config.Config, logger zerolog.Logger) (quran.API, error) {
		return quran.NewClient(cfg.API.BaseURL, logger,
			quran.WithTimeout(cfg.API.Timeout),
			quran.WithUserAgent(cfg.API.UserAgent),
		)
	}
)

var rootCmd = &cobra.Command{
	Use:   "alquran",
	Short: "Browse Quran editions, text and recitations from alquran.cloud",
	Long: `alquran is a command line client for the alquran.cloud editions API.

It lists the available editions, languages, edition types and formats,
and fetches the complete text or audio of an edition.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// SetVersion records build information shown by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (overrides api.base_url)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: table, json or yaml")
}

// initializeApp loads configuration and builds the logger, client and
// filter presets shared by every command
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if baseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if outputFlag != "" {
		cfg.Output.Format = outputFlag
	}
	output, err = display.ParseOutputFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	formatter = display.NewConsoleFormatter(cfg.Logging.Color && display.IsTerminal(os.Stdout))

	presets = filter.NewManager()
	if err := presets.RegisterAll(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	api, err = newAPI(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	logger.Debug().Str("base_url", cfg.API.BaseURL).Str("output", string(output)).Msg("Initialized")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !display.ColorEnabled(cfg.Color, out),
	}
	return zerolog.New(console).With().Timestamp().Logger()
}

// render prints v as a table or through the configured encoder
func render(w io.Writer, v any, table func() string) error {
	if output == display.OutputTable {
		_, err := io.WriteString(w, table())
		return err
	}
	return display.Encode(w, output, v)
}
