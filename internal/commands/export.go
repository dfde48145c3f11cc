package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"bell-lookup/internal/source"
)

func addExport(topLevel *cobra.Command) {
	path := ""
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the channel table into a local SQLite snapshot.",
		Example: `
belltv export --sqlite ~/belltv.db
BELLTV_SOURCE=sqlite BELLTV_SQLITE_PATH=~/belltv.db belltv list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				return errors.New("--sqlite is required")
			}
			out, err := homedir.Expand(path)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			cfg, src, err := openSource()
			if err != nil {
				return err
			}
			defer src.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
			defer cancel()
			recs, err := src.FetchChannels(ctx)
			if err != nil {
				return err
			}
			if err := source.WriteSQLite(ctx, out, cfg.Table, recs); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d channels to %s\n", len(recs), out)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "sqlite", "", "Snapshot file to write.")

	topLevel.AddCommand(cmd)
}
