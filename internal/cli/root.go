// Package cli implements the nxcube command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/config"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "N×N cube engine",
	Long: `nxcube simulates Rubik's cubes of any size from 2x2 up.

Apply moves in standard notation, scramble, record sessions to a local
database and replay them, or mirror a GoCube smart cube over Bluetooth.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.nxcube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxcube/nxcube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// env is what every command needs: the loaded config and a logger.
type env struct {
	cfg    config.Config
	logger *log.Logger
	out    io.Writer
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: verbose,
		Prefix:          "nxcube",
		Level:           lvl,
	})

	return &env{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}, nil
}

// cubeOptions returns the engine options for the configured scheme.
func (e *env) cubeOptions() ([]nxcube.Option, error) {
	return e.cfg.CubeOptions(e.logger)
}

// newCube builds a solved cube of size n, or the configured size when n is 0.
func (e *env) newCube(n int) (*nxcube.Cube, error) {
	if n == 0 {
		n = e.cfg.Size
	}
	opts, err := e.cubeOptions()
	if err != nil {
		return nil, err
	}
	return nxcube.New(n, opts...)
}

func (e *env) openDB() (*storage.DB, error) {
	path := e.cfg.DBPath
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	e.logger.Debug("opening database", "path", path)
	return storage.Open(path)
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.out, format, args...)
}
