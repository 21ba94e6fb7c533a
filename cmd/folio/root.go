package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacostarepublic/folio"
	"github.com/dacostarepublic/folio/internal/platform"
	"github.com/dacostarepublic/folio/pkg/core"
)

var (
	verbose    bool
	rootDir    string
	configPath string

	cfg    platform.Config
	logger = slog.New(slog.DiscardHandler)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Index a directory of Markdown documents into a content tree",
	Long: `Folio walks a content root, reads the YAML header of every Markdown document
and builds a tree of sections and documents. The tree is cached as a JSON
snapshot inside the root and served from there until purged.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		level, err := platform.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "Content root (default: content_root from folio.toml, else the working directory)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to folio.toml (default: nearest folio.toml above the working directory)")
}

// loadConfig reads the explicit --config file, or the nearest folio.toml.
// An explicit --root without --config skips the search.
func loadConfig() (platform.Config, error) {
	path := configPath
	if path == "" && rootDir != "" {
		return platform.Config{}, nil
	}
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return platform.Config{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		dir, err := platform.FindRoot(wd)
		if errors.Is(err, platform.ErrNoConfig) {
			return platform.Config{}, nil
		}
		if err != nil {
			return platform.Config{}, err
		}
		path = filepath.Join(dir, platform.ConfigFileName)
	}
	return platform.LoadConfig(path)
}

func contentRoot() (string, error) {
	switch {
	case rootDir != "":
		return rootDir, nil
	case cfg.ContentRoot != "":
		return cfg.ContentRoot, nil
	default:
		return os.Getwd()
	}
}

// openService wires the service for the resolved content root.
func openService() (*core.Service, error) {
	root, err := contentRoot()
	if err != nil {
		return nil, err
	}

	opts := append(cfg.Options(), folio.WithLogger(logger))
	svc, err := folio.New(root, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", root, err)
	}
	return svc, nil
}

// loadTree returns the tree, tolerating a failed snapshot write.
func loadTree(cmd *cobra.Command, svc *core.Service) (core.Node, error) {
	tree, err := svc.Tree(cmd.Context())
	if err != nil && tree != nil && errors.Is(err, core.ErrSnapshotWrite) {
		logger.Warn("tree built but not cached", "error", err)
		return tree, nil
	}
	return tree, err
}
