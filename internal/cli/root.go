package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewilliamsbk88/chore-scheduler/internal/catalog"
	"github.com/ewilliamsbk88/chore-scheduler/internal/config"
	"github.com/ewilliamsbk88/chore-scheduler/internal/logging"
	"github.com/ewilliamsbk88/chore-scheduler/internal/session"
	"github.com/ewilliamsbk88/chore-scheduler/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	catalogPath string
	weekStart   string
	debug       bool
)

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chores",
		Short: "Weekly household chore checklist",
		Long: `chores shows the household chore checklist for the current week.

Mark chores done per week, page between weeks and switch between the front
and back of the house. Nothing is saved when the program exits.`,
		RunE:          runBoard,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .chores/config.yaml, then ~/.chores/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML catalog replacing the built-in rooms and chores")
	rootCmd.Flags().StringVar(&weekStart, "week-start", "", "start date of week 1 (YYYY-MM-DD, default today)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "show the operations panel and log at debug level")

	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version))
	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if debug {
		level = slog.LevelDebug
	}
	logDir, err := cfg.LogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	logFile, err := logging.OpenFile(logDir, time.Now())
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(logFile, level)

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	opts := []session.Option{
		session.WithZone(cfg.DefaultZone),
		session.WithAssignee(cfg.DefaultAssignee),
		session.WithLogger(logger),
	}
	if weekStart != "" {
		opts = append(opts, session.WithWeekStart(weekStart))
	}
	mgr := session.New(cat, opts...)

	p := tea.NewProgram(
		tui.NewRootModel(mgr, cfg.Assignees, tui.WithDebug(debug), tui.WithLogger(logger)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}

	s := mgr.State()
	logger.Info("session ended", "week", s.CurrentWeek, "completed", len(s.CompletedTasks))
	return nil
}

// loadCatalog picks the --catalog flag, then the config's catalog path,
// then the built-in catalog
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := catalogPath
	if path == "" {
		path = cfg.Catalog
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}
