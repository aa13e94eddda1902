package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billie-coop/typeahead/internal/catalog"
)

func newCatalogCommand(a *app) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the searchable catalog",
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "add <name> [description]",
		Short: "Add an entry or replace its description",
		Long: `Adds an entry to the catalog. The description is markdown and is
what the search dropdown renders for the entry.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := catalog.Entry{Name: args[0]}
			if len(args) == 2 {
				entry.Description = args[1]
			}

			store, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Add(cmd.Context(), entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", entry.Name)
			return nil
		},
	})

	var limit int
	searchCmd := &cobra.Command{
		Use:   "search <prefix>",
		Short: "List entries whose name starts with prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.SearchLimit
			}
			entries, err := store.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintln(out, e.Name)
			}
			return nil
		},
	}
	searchCmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of results")
	catalogCmd.AddCommand(searchCmd)

	return catalogCmd
}
