// Package commands wires the belltv command line.
package commands

import (
	"github.com/spf13/cobra"

	"bell-lookup/internal/config"
	"bell-lookup/internal/infra/logx"
)

type rootOptions struct {
	configPath string
	debug      bool
}

var ro = &rootOptions{}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "belltv",
		Short: "Look up any Bell TV channel by name or number, filter by bundle or category.",
		Example: `
belltv
belltv list -q tsn -b "Bundle 1"
belltv serve --addr :9000
`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logx.SetOutput(cmd.ErrOrStderr())
			if ro.debug {
				logx.SetMinLevel(logx.LevelDebug)
			} else {
				logx.SetMinLevel(logx.LevelWarn)
			}
		},
		Args: cobra.NoArgs,
		RunE: runUI,
	}
	cmd.PersistentFlags().StringVar(&ro.configPath, "config", config.DefaultPath(), "Path to the rc file.")
	cmd.PersistentFlags().BoolVar(&ro.debug, "debug", false, "Enable debug logging (the interactive view logs to debug.log).")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addCategories(topLevel)
	addServe(topLevel)
	addExport(topLevel)
	addConfig(topLevel)
	addVersion(topLevel)
}
