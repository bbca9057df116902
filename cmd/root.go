package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/spangrid/internal/config"
	"github.com/zjrosen/spangrid/internal/log"
	"github.com/zjrosen/spangrid/internal/sheet"
	"github.com/zjrosen/spangrid/internal/ui/grid"
	"github.com/zjrosen/spangrid/internal/ui/styles"
	"github.com/zjrosen/spangrid/internal/watcher"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin, so the
	// OSC 11 reply does not leak into the input loop.
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config.
const localConfigPath = ".spangrid/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	noWatch    bool
	v          = config.NewViper()
	cfg        = config.Defaults()
	cfgErr     error
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "spangrid [file]",
	Short: "A terminal viewer for sheets with merged cells",
	Long: `spangrid shows a YAML sheet as a grid in which merged cells behave as one
cell: the cursor crosses them in a single step, selections snap to them and
they are drawn as one block.

Without a file argument the sheet named by the config "sheet" key is opened,
or the built-in example when none is set.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/spangrid/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (also enabled by SPANGRID_DEBUG)")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false,
		"do not reload the sheet when it changes on disk")
	rootCmd.Flags().String("mode", "",
		"selection mode: single, single_interval or multiple_interval")
	rootCmd.Flags().Bool("columns", false, "select columns as well as rows")

	_ = v.BindPFlag("selection"+config.KeyDelimiter+"mode", rootCmd.Flags().Lookup("mode"))
	_ = v.BindPFlag("selection"+config.KeyDelimiter+"columns", rootCmd.Flags().Lookup("columns"))
}

func initConfig() {
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case fileExists(localConfigPath):
		v.SetConfigFile(localConfigPath)
	default:
		path := config.DefaultConfigPath()
		if path == "" {
			break
		}
		if !fileExists(path) {
			// Without a config file the defaults apply; a failed write is not fatal.
			_ = config.WriteDefaultConfig(path)
		}
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
	}
	configPath = v.ConfigFileUsed()
	cfg, cfgErr = config.Unmarshal(v)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// initLogging writes to a file in debug mode. Otherwise warnings are still
// published to the status bar but written nowhere.
func initLogging() (func(), error) {
	if !debugFlag && os.Getenv("SPANGRID_DEBUG") == "" {
		log.SetDefault(log.New(io.Discard))
		log.SetMinLevel(log.LevelWarn)
		return func() { log.SetDefault(nil) }, nil
	}
	logPath := os.Getenv("SPANGRID_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.Init(logPath)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "spangrid starting", "version", version, "config", configPath)
	return cleanup, nil
}

// sheetPath resolves the sheet to open: the argument, then the config.
func sheetPath(args []string) (string, error) {
	path := cfg.Sheet
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return "", nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

// loadSnapshot opens path, or the built-in example for an empty path.
func loadSnapshot(ctx context.Context, loader *sheet.Loader, path string) (*sheet.Snapshot, error) {
	if path == "" {
		return loader.Snapshot(ctx, sheet.Example())
	}
	return loader.Load(ctx, path)
}

func runApp(_ *cobra.Command, args []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	cleanup, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.Colors}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	path, err := sheetPath(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := sheet.NewMemoryLoader()
	snap, err := loadSnapshot(ctx, loader, path)
	if err != nil {
		return err
	}

	opts := grid.Options{
		Path:           path,
		Navigator:      cfg.NavigatorOptions(),
		ShowHeader:     cfg.UI.ShowHeader,
		ShowHelp:       cfg.UI.ShowHelp,
		ShowStatusBar:  cfg.UI.ShowStatusBar,
		MinColumnWidth: cfg.UI.MinColumnWidth,
		ConfigPath:     configPath,
		Theme:          cfg.Theme,
	}

	if path != "" && cfg.AutoReload && !noWatch {
		w, err := watcher.New(watcher.Config{Path: path, Debounce: cfg.ReloadDebounce})
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		defer func() { _ = w.Stop() }()
		opts.Changes = changes
	}

	model := grid.New(ctx, snap, loader, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(s string) {
	version = s
	rootCmd.Version = s
}
