package main

//
// Search subcommands
//

import (
	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// searchSubcommand returns the search subcommand.
func searchSubcommand(sess *session) *cobra.Command {
	var (
		res     scryfall.CardSearch
		unique  string
		order   string
		dir     string
		pageURL string
	)
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Searches cards using the full text search syntax",
		Long: "Searches cards using the full text search syntax. Results are paginated: " +
			"use --page or pass the next page URL printed at the end of the results " +
			"to --page-url to fetch more results.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageURL != "" {
				return fetch(cmd, sess, scryfall.NextCardPage{URL: pageURL})
			}
			if len(args) != 1 {
				return errors.New("expected a search query or --page-url")
			}
			res.Query = args[0]
			res.Unique = scryfall.UniqueMode(unique)
			res.Order = scryfall.SortOrder(order)
			res.Dir = scryfall.SortDir(dir)
			return fetch(cmd, sess, res)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&unique, "unique", "", "Omit similar cards: cards, art or prints")
	flags.StringVar(&order, "order", "", "Sort order (e.g., name, released, cmc, usd)")
	flags.StringVar(&dir, "dir", "", "Sort direction: auto, asc or desc")
	flags.BoolVar(&res.IncludeExtras, "include-extras", false, "Include extra cards such as tokens")
	flags.BoolVar(&res.IncludeMultilingual, "include-multilingual", false, "Include cards in every language")
	flags.BoolVar(&res.IncludeVariations, "include-variations", false, "Include rare card variants")
	flags.IntVar(&res.Page, "page", 0, "Page number to fetch")
	flags.StringVar(&pageURL, "page-url", "", "Fetch the page at the given next page URL")
	return cmd
}

// autocompleteSubcommand returns the autocomplete subcommand.
func autocompleteSubcommand(sess *session) *cobra.Command {
	var includeExtras bool
	cmd := &cobra.Command{
		Use:   "autocomplete PREFIX",
		Short: "Lists up to 20 card names starting with the given prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, sess, scryfall.CardAutocomplete{Query: args[0], IncludeExtras: includeExtras})
		},
	}
	cmd.Flags().BoolVar(&includeExtras, "include-extras", false, "Include extra cards such as tokens")
	return cmd
}
