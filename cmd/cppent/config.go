package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *app) configCmd() *cobra.Command {
	var showSource bool
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
		Example: `  # Show effective configuration
  cppent config show

  # Show configuration with source file path
  cppent config show --source`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showSource {
				if a.configPath != "" {
					fmt.Fprintf(out, "Config file: %s\n\n", a.configPath)
				} else {
					fmt.Fprintln(out, "Config file: (none, using defaults)")
					fmt.Fprintln(out)
				}
			}

			buf, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(buf)
			return err
		},
	}
	configShowCmd.Flags().BoolVar(&showSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
	return configCmd
}
