package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/cppent/compiler/gen"
	"github.com/syssam/cppent/compiler/load"
	"github.com/syssam/cppent/internal/cli"
)

func (a *app) inspectCmd() *cobra.Command {
	var (
		sf      schemaFlags
		profile string
	)
	cmd := &cobra.Command{
		Use:   "inspect [schema files or directories...]",
		Short: "Show how entity fields resolve",
		Long: `Show the resolved field table of every entity: the C++ member, its
declaration type, default value and data set accessor, the bind parameter
and the generated validation. Nothing is written.`,
		Example: `  # Inspect one entity
  cppent inspect --entity MSupplier --fields "idMSupplier:int;saldo:money"

  # Inspect with the VCL type profile
  cppent inspect schemas/ --profile vcl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := a.compilerConfig(args, &sf, profile)
			if err != nil {
				return err
			}
			schemas, err := load.Load(cc.Paths...)
			if err != nil {
				return cli.SchemaParseError("loading schemas", err)
			}
			schemas = append(schemas, cc.Schemas...)
			eng, err := gen.New(cc.Options...)
			if err != nil {
				return cli.Classify("invalid configuration", err)
			}
			gc := eng.Config()
			out := cmd.OutOrStdout()
			for i, s := range schemas {
				t, err := gen.NewType(&gc, s)
				if err != nil {
					return cli.Classify("invalid schema", err)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printType(out, gc.Profile, t)
			}
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringVar(&profile, "profile", "", "type profile: std or vcl")
	return cmd
}

// printType writes the resolved field table of t.
func printType(out io.Writer, profile string, t *gen.Type) {
	bold := color.New(color.Bold)
	fmt.Fprintf(out, "%s  table=%s  identity=%s  base=%s  profile=%s\n", bold.Sprint(t.Class), t.Table, t.IDName, t.Base, profile)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FIELD\tTYPE\tDECL\tDEFAULT\tACCESSOR\tPARAM\tFLAGS")
	for _, f := range t.Fields {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Name, f.Type, f.DeclType, f.Default, "As"+f.Accessor, f.Param, fieldFlags(f))
	}
	_ = w.Flush()

	if len(t.Hydrate) > 0 {
		pairs := make([]string, len(t.Hydrate))
		for i, p := range t.Hydrate {
			pairs[i] = p.Member + "=>" + p.Key
		}
		fmt.Fprintf(out, "  hydrate: %s\n", strings.Join(pairs, " "))
	}
	warn := color.New(color.FgYellow)
	for _, wn := range t.Warnings {
		fmt.Fprintf(out, "  %s %s\n", warn.Sprint("!"), wn)
	}
}

func fieldFlags(f *gen.Field) string {
	var flags []string
	if f.Identity {
		flags = append(flags, "identity")
	}
	if f.Required {
		flags = append(flags, "required")
	}
	if f.Unique {
		flags = append(flags, "unique")
	}
	if f.Unresolved {
		flags = append(flags, "unresolved")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}
