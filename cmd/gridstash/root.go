package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gravitas-games/gridstash/internal/catalog"
	"github.com/gravitas-games/gridstash/internal/config"
	"github.com/gravitas-games/gridstash/pkg/inventory"
)

// Version is the gridstash release.
const Version = "0.3.0"

const (
	cfgKeyConfig      = "config"
	envPrefix         = "GRIDSTASH"
	defaultConfigPath = "./configs/gridstash.yaml"
)

// Global flag values.
var flagConfig string

// cfg is loaded by PersistentPreRunE so all subcommands can use it.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "gridstash",
	Short:         "Gridstash is a grid inventory engine playground",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (resolveConfigPath refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := resolveConfigPath()
		c, err := loadConfig(path)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: $GRIDSTASH_CONFIG or "+defaultConfigPath+")")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(journalCmd)
}

// resolveConfigPath returns the config file path following
// --config flag > GRIDSTASH_CONFIG env > default.
func resolveConfigPath() string {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(cfgKeyConfig, defaultConfigPath)
	if f := rootCmd.PersistentFlags().Lookup(cfgKeyConfig); f != nil {
		_ = v.BindPFlag(cfgKeyConfig, f)
	}
	return v.GetString(cfgKeyConfig)
}

// loadConfig reads the config file. A missing default file falls back to the
// built-in defaults; a missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	c, err := config.Load(path)
	if err == nil {
		log.Printf("Configuration loaded from %s", path)
		return c, nil
	}
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		log.Printf("No configuration at %s, using defaults", path)
		return config.Default(), nil
	}
	return nil, err
}

// loadRegistry loads the configured catalog, or the sample catalog when none
// is configured. Relative catalog paths resolve from the working directory.
func loadRegistry(c *config.Config) (*inventory.Registry, error) {
	if c.Catalog.Path == "" {
		return inventory.SampleRegistry(), nil
	}
	reg, err := catalog.Load(filepath.Clean(c.Catalog.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("Loaded %d item definitions from %s", reg.Len(), c.Catalog.Path)
	return reg, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(os.Stdout, "gridstash", Version)
	},
}
