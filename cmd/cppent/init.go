package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/internal/cli"
)

const defaultInitPath = "schemas/msupplier.yaml"

func (a *app) initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the reference supplier schema",
		Long: `Write the supplier master entity as a schema file. Every per-entity
setting is spelled out, so the file doubles as documentation of the
schema format. Use "-" to write to stdout.`,
		Example: `  # Write schemas/msupplier.yaml
  cppent init

  # Print the schema
  cppent init -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultInitPath
			if len(args) == 1 {
				path = args[0]
			}
			buf, err := marshalSchema()
			if err != nil {
				return cli.GeneralError("encoding schema", err)
			}
			if path == "-" {
				_, err := cmd.OutOrStdout().Write(buf)
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return cli.ConfigError(fmt.Sprintf("%s already exists", path), errors.New("use --force to overwrite"))
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return cli.GeneralError("creating schema directory", err)
			}
			if err := os.WriteFile(path, buf, 0o644); err != nil {
				return cli.GeneralError(fmt.Sprintf("writing %s", path), err)
			}
			if !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func marshalSchema() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(gen.MSupplierSchema()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
