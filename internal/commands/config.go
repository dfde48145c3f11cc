package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"bell-lookup/internal/config"
)

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the belltv rc file.",
	}
	addConfigInit(cmd)
	addConfigShow(cmd)

	topLevel.AddCommand(cmd)
}

func addConfigInit(parent *cobra.Command) {
	var next config.Config
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write connection settings to the rc file.",
		Example: `
belltv config init --url https://xyz.supabase.co --key <anon key>
belltv config init --source sqlite --sqlite-path ~/belltv.db
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Start from what is there so unchanged keys survive.
			cfg, err := config.Load(ro.configPath)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("source") {
				cfg.Source = next.Source
			}
			if f.Changed("url") {
				cfg.SupabaseURL = next.SupabaseURL
			}
			if f.Changed("key") {
				cfg.SupabaseKey = next.SupabaseKey
			}
			if f.Changed("table") {
				cfg.Table = next.Table
			}
			if f.Changed("database-url") {
				cfg.DatabaseURL = next.DatabaseURL
			}
			if f.Changed("sqlite-path") {
				cfg.SQLitePath = next.SQLitePath
			}
			if err := config.Save(ro.configPath, cfg); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", ro.configPath)
			return err
		},
	}
	cmd.Flags().StringVar(&next.Source, "source", config.SourceREST, "One of rest, postgres or sqlite.")
	cmd.Flags().StringVar(&next.SupabaseURL, "url", "", "Supabase project URL.")
	cmd.Flags().StringVar(&next.SupabaseKey, "key", "", "Supabase anon key.")
	cmd.Flags().StringVar(&next.Table, "table", "channels", "Channel table name.")
	cmd.Flags().StringVar(&next.DatabaseURL, "database-url", "", "Postgres connection string.")
	cmd.Flags().StringVar(&next.SQLitePath, "sqlite-path", "", "SQLite snapshot file.")

	parent.AddCommand(cmd)
}

func addConfigShow(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets hidden.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(ro.configPath)
			if err != nil {
				return err
			}
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow("file", cfg.Path)
			tbl.AddRow("source", cfg.Source)
			tbl.AddRow("supabase url", cfg.SupabaseURL)
			tbl.AddRow("supabase key", hidden(cfg.SupabaseKey))
			tbl.AddRow("table", cfg.Table)
			tbl.AddRow("database url", hidden(cfg.DatabaseURL))
			tbl.AddRow("sqlite path", cfg.SQLitePath)
			tbl.AddRow("addr", cfg.Addr)
			tbl.AddRow("reload", cfg.Reload)
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), tbl); err != nil {
				return err
			}
			if verr := cfg.Validate(); verr != nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("warning: %v", verr))
			}
			return err
		},
	}
	parent.AddCommand(cmd)
}

func hidden(s string) string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}
