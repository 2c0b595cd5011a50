package main

import (
	"github.com/spf13/cobra"

	"github.com/syssam/cppent/internal/cli"
	"github.com/syssam/cppent/internal/logger"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	// Set during PersistentPreRunE.
	cfg        *cli.Config
	configPath string
	log        logger.Logger

	// Persistent flags.
	cfgFile  string
	logLevel string
	logJSON  bool
	quiet    bool
}

// Command group IDs
const (
	groupGenerate = "generate"
	groupUtility  = "utility"
)

// newRootCmd returns the command tree of the cppent CLI.
func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "cppent",
		Short: "C++ entity class generator",
		Long: `cppent - C++ entity class generator

cppent turns an entity description (a name and a list of name:type fields)
into the header and implementation of a data-access entity class: accessors,
CRUD through stored procedures, per-field validation and JSON hydration.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help/completion/version commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover cppent.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, disabled")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generate:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	for _, cmd := range []*cobra.Command{a.generateCmd(), a.inspectCmd()} {
		cmd.GroupID = groupGenerate
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{a.initCmd(), a.configCmd(), versionCmd()} {
		cmd.GroupID = groupUtility
		rootCmd.AddCommand(cmd)
	}
	return rootCmd
}

// setup loads the configuration and installs the logger in the command
// context.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	a.cfg, a.configPath, err = cli.LoadConfig(a.cfgFile)
	if err != nil {
		return cli.ConfigError("loading configuration", err)
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	a.cfg.Log.JSON = a.cfg.Log.JSON || a.logJSON

	lc := a.cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	a.log = logger.NewLogger(lc)
	if a.configPath != "" {
		a.log.Debug("loaded configuration", "path", a.configPath)
	}
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), a.log))
	return nil
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveInt returns the first positive value.
func resolveInt(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
