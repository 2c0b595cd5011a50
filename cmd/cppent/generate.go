package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/tools/txtar"

	"github.com/syssam/cppent/compiler"
	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
	"github.com/syssam/cppent/internal/cli"
)

// schemaFlags describe one entity on the command line.
type schemaFlags struct {
	entity   string
	fields   string
	hydrate  string
	identity string
	table    string
}

func (f *schemaFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.entity, "entity", "", "entity name, used with --fields")
	fl.StringVar(&f.fields, "fields", "", `field list, e.g. "idMSupplier:int;kodeSupplier:string"`)
	fl.StringVar(&f.hydrate, "hydrate", "", `hydrate mapping, e.g. "kodeSupplier => KodeSupplier;"`)
	fl.StringVar(&f.identity, "identity", "", "identity field (default: id<entity>)")
	fl.StringVar(&f.table, "table", "", "table name (default: lower-cased entity)")
}

// schema returns the entity described by the flags, or nil when none is.
func (f *schemaFlags) schema() (*load.Schema, error) {
	if f.entity == "" && f.fields == "" {
		return nil, nil
	}
	if f.entity == "" || f.fields == "" {
		return nil, cli.ConfigError("--entity and --fields must be used together", nil)
	}
	s := load.ParseSchema(f.entity, f.fields)
	s.Identity = f.identity
	s.Table = f.table
	if f.hydrate != "" {
		s.Hydrate = load.ParseHydrate(f.hydrate)
	}
	return s, nil
}

// compilerConfig builds the pipeline configuration shared by generate and
// inspect: paths from the arguments or the config file, plus the flag entity.
func (a *app) compilerConfig(args []string, sf *schemaFlags, profile string) (compiler.Config, error) {
	paths := args
	if len(paths) == 0 {
		paths = a.cfg.Schemas
	}
	var cc compiler.Config
	s, err := sf.schema()
	if err != nil {
		return cc, err
	}
	if s != nil {
		cc.Schemas = append(cc.Schemas, s)
	}
	if len(paths) == 0 && len(cc.Schemas) == 0 {
		return cc, cli.ConfigError("no schema to generate",
			errors.New("pass schema paths, use --entity/--fields or set schemas in cppent.yaml"))
	}
	cfg := *a.cfg
	cfg.Profile = resolveString(profile, cfg.Profile)
	opts, err := cfg.GenOptions()
	if err != nil {
		return cc, cli.ConfigError("invalid configuration", err)
	}
	cc.Paths = paths
	cc.Options = opts
	cc.Workers = cfg.Workers
	return cc, nil
}

func (a *app) generateCmd() *cobra.Command {
	var (
		sf      schemaFlags
		output  string
		profile string
		archive bool
		watch   bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "generate [schema files or directories...]",
		Short: "Generate entity classes",
		Long: `Generate the header and implementation of every entity.

Schemas are read from the given files and directories (YAML or JSON), from
the schemas of cppent.yaml, or from a single entity given with --entity and
--fields. Without an output directory the documents are written to stdout
as a txtar archive.`,
		Example: `  # Generate one entity from the command line
  cppent generate --entity MSupplier --fields "idMSupplier:int;kodeSupplier:string" --output gen/

  # Generate every schema of a directory
  cppent generate schemas/ --output gen/

  # Print the documents instead of writing them
  cppent generate schemas/supplier.yaml --archive

  # Regenerate on every change
  cppent generate schemas/ --output gen/ --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.compilerConfig(args, &sf, profile)
			if err != nil {
				return err
			}
			cc.Workers = resolveInt(workers, cc.Workers)
			if !archive {
				cc.Output = resolveString(output, a.cfg.Output)
			}
			toStdout := archive || cc.Output == ""

			if watch {
				if toStdout {
					return cli.ConfigError("--watch requires an output directory", nil)
				}
				if len(cc.Paths) == 0 {
					return cli.ConfigError("--watch requires schema paths", nil)
				}
				err := compiler.Watch(cmd.Context(), cc, func(r *compiler.Report, err error) {
					if err != nil {
						a.log.Error("generation failed", "error", err)
						return
					}
					if !a.quiet {
						printSummary(cmd.ErrOrStderr(), r)
					}
				})
				return cli.Classify("watching schemas", err)
			}

			report, err := compiler.Generate(cmd.Context(), cc)
			if err != nil {
				return cli.Classify("generation failed", err)
			}
			if toStdout {
				if _, err := cmd.OutOrStdout().Write(txtar.Format(gen.Archive(report.Results...))); err != nil {
					return cli.GeneralError("writing to stdout", err)
				}
			}
			if !a.quiet {
				printSummary(cmd.ErrOrStderr(), report)
			}
			return nil
		},
	}
	sf.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output directory (default: stdout archive)")
	f.StringVar(&profile, "profile", "", "type profile: std or vcl")
	f.BoolVar(&archive, "archive", false, "write the documents to stdout as a txtar archive")
	f.BoolVarP(&watch, "watch", "w", false, "regenerate when a schema file changes")
	f.IntVar(&workers, "workers", 0, "entities generated in parallel (default: GOMAXPROCS)")
	return cmd
}

// printSummary writes one line per entity and the totals of a run.
func printSummary(w io.Writer, r *compiler.Report) {
	ok := color.New(color.FgGreen).Sprint("✓")
	warn := color.New(color.FgYellow)
	for _, res := range r.Results {
		icon := ok
		note := ""
		if n := len(res.Warnings); n > 0 {
			icon = warn.Sprint("!")
			note = warn.Sprintf(" (%d warnings)", n)
		}
		fmt.Fprintf(w, "%s %s%s\n", icon, res.Class, note)
	}
	for _, p := range r.Files {
		fmt.Fprintf(w, "  wrote %s\n", p)
	}
	fmt.Fprintf(w, "Generated %d entities in %s\n", len(r.Results), r.Duration.Round(time.Millisecond))
}
