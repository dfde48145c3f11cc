package commands

import (
	"github.com/spf13/cobra"

	"bell-lookup/internal/channel"
	"bell-lookup/internal/printers"
)

type listOptions struct {
	query    string
	bundle   string
	category string
	output   string
}

func addList(topLevel *cobra.Command) {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the channels matching a search, bundle and category.",
		Example: `
belltv list -q tsn
belltv list -b "Bundle 2" -c Sports -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundle, err := channel.ParseBundle(lo.bundle)
			if err != nil {
				return err
			}
			format, err := printers.ParseFormat(lo.output)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			state, err := fetchState(cmd.Context())
			if err != nil {
				return err
			}
			state = state.WithQuery(lo.query).WithBundle(bundle).WithCategory(lo.category)
			return printers.New(cmd.OutOrStdout(), format).Channels(state.Matches(), state.Summary())
		},
	}
	cmd.Flags().StringVarP(&lo.query, "query", "q", "", "Case-insensitive match on channel name or number.")
	cmd.Flags().StringVarP(&lo.bundle, "bundle", "b", string(channel.BundleAll), "One of All, Bundle 1, Bundle 2, Bundle 3.")
	cmd.Flags().StringVarP(&lo.category, "category", "c", channel.All, "Exact category, or All.")
	cmd.Flags().StringVarP(&lo.output, "output", "o", printers.FormatTable, "Output format. One of table, json or yaml.")

	topLevel.AddCommand(cmd)
}

func addCategories(topLevel *cobra.Command) {
	output := printers.FormatTable
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the categories present in the channel table.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := printers.ParseFormat(output)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			state, err := fetchState(cmd.Context())
			if err != nil {
				return err
			}
			return printers.New(cmd.OutOrStdout(), format).Categories(state.Categories())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", printers.FormatTable, "Output format. One of table, json or yaml.")

	topLevel.AddCommand(cmd)
}
