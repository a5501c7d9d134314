package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/folio/internal/config"
	"github.com/saravenpi/folio/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	logFile string
	dark    bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A playful profile card for your terminal",
	Long: `Folio shows a draggable profile card over rain and waves, with an
about overlay and a contact chat that is, admittedly, not real.

Navigation:
  tab / shift+tab   Move between controls
  enter             Activate the focused control
  a / c             Open about / contact
  t                 Toggle dark mode
  arrows or drag    Move the card
  esc               Close the overlay
  q                 Quit (ctrl+c anywhere)`,
	SilenceUsage: true,
	RunE:         runCard,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.Flags().BoolVar(&dark, "dark", false, "start in dark mode")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger returns a logger writing to path. The terminal belongs to the
// card, so without a path logs are discarded.
func newLogger(path string) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func runCard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dark") {
		cfg.Dark = dark
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	logger, closer, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	logger.Info("starting folio", "config", cfgFile, "dark", cfg.Dark)

	p := tea.NewProgram(ui.NewModel(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("running card: %w", err)
	}
	return nil
}
