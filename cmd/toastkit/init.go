package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastkit/internal/config"
	"github.com/vango-dev/toastkit/internal/errors"
)

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default toastkit.json",
		Long: `Write a toastkit.json with every setting at its default value.

Examples:
  toastkit init
  toastkit init ./preview --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := runInit(dir, force)
			if err != nil {
				return err
			}
			success("Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}

func runInit(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.ConfigFileName)
	if config.Exists(dir) && !force {
		return "", errors.New("E106").
			WithFile(path).
			WithSuggestion("Pass --force to overwrite it")
	}
	if err := config.New().SaveTo(path); err != nil {
		return "", err
	}
	return path, nil
}
