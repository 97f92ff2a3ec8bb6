package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passcheck/internal/config"
)

func newConfigCommand(opts *cliOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the passcheck configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to ~/.passcheck/passcheck.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configFile
			if path == "" {
				var err error
				path, err = config.DefaultFilePath(os.UserHomeDir)
				if err != nil {
					return err
				}
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	return configCmd
}
