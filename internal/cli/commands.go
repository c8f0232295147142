package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ewilliamsbk88/chore-scheduler/internal/catalog"
	"github.com/ewilliamsbk88/chore-scheduler/internal/config"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the chore catalog as YAML",
		Long: `Print the active chore catalog as YAML.

The output can be edited and passed back with --catalog or the catalog
config key. Catalogs must define exactly two zones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			data, err := catalog.Marshal(cat)
			if err != nil {
				return fmt.Errorf("encode catalog: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigCmd() *cobra.Command {
	var global bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(".chores", "config.yaml")
			if global {
				dir, err := config.GlobalDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, "config.yaml")
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.WriteDefault(path); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&global, "global", false, "write ~/.chores/config.yaml instead of the project file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "chores", version)
		},
	}
}
