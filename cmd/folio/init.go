package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacostarepublic/folio/internal/platform"
	"github.com/dacostarepublic/folio/pkg/adapters/fs"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter folio.toml",
	Long: `Init writes a folio.toml into dir (default: the working directory).
The content root defaults to --root, or "content" next to the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		path := filepath.Join(dir, platform.ConfigFileName)

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		contentRoot := "content"
		if rootDir != "" {
			abs, err := filepath.Abs(rootDir)
			if err != nil {
				return err
			}
			contentRoot = abs
		}

		starter := platform.Config{
			ContentRoot:  contentRoot,
			SnapshotName: fs.DefaultSnapshotName,
			LogLevel:     "info",
		}
		if err := starter.Save(path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing folio.toml")
}
