package main

//
// Sets, catalogs, symbology and bulk data subcommands
//

import (
	"strconv"

	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/spf13/cobra"
)

// setsSubcommand returns the sets subcommand.
func setsSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "Lists all the sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, sess, scryfall.AllSets{})
		},
	}
}

// setSubcommand returns the set subcommand.
func setSubcommand(sess *session) *cobra.Command {
	var tcgplayer bool
	cmd := &cobra.Command{
		Use:   "set CODE",
		Short: "Fetches a set by code, Scryfall ID or TCGplayer ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tcgplayer {
				return fetch(cmd, sess, scryfall.SetByCode{Code: args[0]})
			}
			ID, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return fetch(cmd, sess, scryfall.SetByTCGPlayerID{ID: ID})
		},
	}
	cmd.Flags().BoolVar(&tcgplayer, "tcgplayer", false, "Interpret CODE as a TCGplayer ID")
	return cmd
}

// catalogSubcommand returns the catalog subcommand.
func catalogSubcommand(sess *session) *cobra.Command {
	var names []string
	for _, name := range scryfall.CatalogNames {
		names = append(names, string(name))
	}
	return &cobra.Command{
		Use:       "catalog NAME",
		Short:     "Fetches a catalog (e.g., creature-types)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, sess, scryfall.CatalogByName{Name: scryfall.CatalogName(args[0])})
		},
	}
}

// symbologySubcommand returns the symbology subcommand.
func symbologySubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "symbology",
		Short: "Lists all the card symbols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, sess, scryfall.AllCardSymbols{})
		},
	}
}

// parseManaSubcommand returns the parse-mana subcommand.
func parseManaSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-mana COST",
		Short: "Parses a mana cost (e.g., {2}{W}{W} or 2ww)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetch(cmd, sess, scryfall.ParseMana{Cost: args[0]})
		},
	}
}

// bulkDataSubcommand returns the bulk-data subcommand.
func bulkDataSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-data [ID|TYPE]",
		Short: "Lists the bulk data files or fetches one by ID or type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return fetch(cmd, sess, scryfall.BulkDataByID{ID: args[0]})
			}
			return fetch(cmd, sess, scryfall.AllBulkData{})
		},
	}
}
