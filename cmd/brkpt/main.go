package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pders01/brkpt/internal/config"
	"github.com/pders01/brkpt/internal/debuglog"
	"github.com/pders01/brkpt/internal/store"
	"github.com/pders01/brkpt/internal/tui"
	"github.com/pders01/brkpt/internal/watcher"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:   "brkpt",
	Short: "Live terminal breakpoint classifier",
	Long: "brkpt watches the terminal size and classifies it into named width\n" +
		"buckets (xs..xl) with cumulative flags and a mobile cutoff, updating\n" +
		"live as the window resizes.",
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runTUI()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("brkpt %s\n", Version)
		fmt.Println("Terminal breakpoint classifier")
		fmt.Println("github.com/pders01/brkpt")
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config",
	Short: "Generate default config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.GenerateDefaultConfig(path); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", path)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to database file (overrides config)")

	rootCmd.AddCommand(versionCmd, generateConfigCmd, inspectCmd, historyCmd, docsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	for _, w := range cfg.Warnings() {
		debuglog.Warnf("config: %s", w)
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return cfg, nil
}

func runTUI() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.Path); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer debuglog.Close()

	st, err := store.NewStore(cfg.Database.Path)
	if err != nil {
		// The dashboard works without history; degrade instead of dying.
		debuglog.Warnf("opening store: %v", err)
		st = nil
	} else {
		defer st.Close()
	}

	app := tui.NewApp(cfg, configPath, st)
	defer app.Display().Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	watchPath := configPath
	if watchPath == "" {
		watchPath = config.DefaultPath()
	}
	if _, statErr := os.Stat(watchPath); statErr == nil {
		w, watchErr := watcher.Watch(watchPath, 0, func() {
			p.Send(tui.ConfigReloadedMsg{})
		})
		if watchErr != nil {
			debuglog.Warnf("config watch: %v", watchErr)
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
