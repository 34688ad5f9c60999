package main

//
// Card subcommands
//

import (
	"strconv"

	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxParallelLookups is the maximum number of concurrent card lookups.
const maxParallelLookups = 4

// cardSubcommand returns the card subcommand.
func cardSubcommand(sess *session) *cobra.Command {
	var idKind string
	cmd := &cobra.Command{
		Use:   "card ID...",
		Short: "Fetches cards by Scryfall, Arena, MTGO, multiverse, TCGplayer or Cardmarket ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resources := make([]scryfall.Resource[*scryfall.Card], 0, len(args))
			for _, arg := range args {
				res, err := newCardResource(idKind, arg)
				if err != nil {
					return err
				}
				resources = append(resources, res)
			}
			cards, err := lookupCards(cmd, sess, resources)
			if err != nil {
				return err
			}
			for _, card := range cards {
				if err := emit(sess.stdout, sess.opts.output, card); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&idKind, "kind", "scryfall", "ID kind: scryfall, arena, mtgo, multiverse, tcgplayer or cardmarket")
	return cmd
}

// newCardResource returns the resource for fetching the card with the given ID.
func newCardResource(kind, ID string) (scryfall.Resource[*scryfall.Card], error) {
	if kind == "scryfall" {
		return scryfall.CardByID{ID: ID}, nil
	}
	value, err := strconv.Atoi(ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s ID", kind)
	}
	switch kind {
	case "arena":
		return scryfall.CardByArenaID{ID: value}, nil
	case "mtgo":
		return scryfall.CardByMTGOID{ID: value}, nil
	case "multiverse":
		return scryfall.CardByMultiverseID{ID: value}, nil
	case "tcgplayer":
		return scryfall.CardByTCGPlayerID{ID: value}, nil
	case "cardmarket":
		return scryfall.CardByCardmarketID{ID: value}, nil
	default:
		return nil, errors.Errorf("unknown ID kind: %s", kind)
	}
}

// lookupCards fetches the given cards in parallel using a single client and
// returns them in the same order. We fail if any lookup fails.
func lookupCards(cmd *cobra.Command, sess *session, resources []scryfall.Resource[*scryfall.Card]) ([]*scryfall.Card, error) {
	client := sess.newClient()
	defer client.CloseIdleConnections()
	cards := make([]*scryfall.Card, len(resources))
	group, ctx := errgroup.WithContext(cmd.Context())
	group.SetLimit(maxParallelLookups)
	for idx, res := range resources {
		idx, res := idx, res
		group.Go(func() error {
			card, err := scryfall.Request(ctx, client, res)
			if err != nil {
				return errors.Wrap(err, res.RequestSpec().Name)
			}
			cards[idx] = card
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// printSubcommand returns the print subcommand.
func printSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "print SET NUMBER [LANG]",
		Short: "Fetches a card by set code and collector number",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := scryfall.CardByCode{Set: args[0], Number: args[1]}
			if len(args) == 3 {
				res.Lang = args[2]
			}
			return fetch(cmd, sess, res)
		},
	}
}

// namedSubcommand returns the named subcommand.
func namedSubcommand(sess *session) *cobra.Command {
	var (
		fuzzy bool
		set   string
	)
	cmd := &cobra.Command{
		Use:   "named NAME",
		Short: "Fetches a card by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := scryfall.CardNamed{Exact: args[0], Set: set}
			if fuzzy {
				res = scryfall.CardNamed{Fuzzy: args[0], Set: set}
			}
			return fetch(cmd, sess, res)
		},
	}
	cmd.Flags().BoolVar(&fuzzy, "fuzzy", false, "Perform a fuzzy lookup")
	cmd.Flags().StringVar(&set, "set", "", "Restrict the lookup to the given set code")
	return cmd
}

// randomSubcommand returns the random subcommand.
func randomSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "random [QUERY]",
		Short: "Fetches a random card, optionally matching a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res scryfall.RandomCard
			if len(args) == 1 {
				res.Query = args[0]
			}
			return fetch(cmd, sess, res)
		},
	}
}

// collectionSubcommand returns the collection subcommand.
func collectionSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "collection NAME...",
		Short: "Fetches up to 75 cards by name with a single request",
		Args:  cobra.RangeArgs(1, 75),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res scryfall.CardCollection
			for _, name := range args {
				res.Identifiers = append(res.Identifiers, scryfall.CardIdentifier{Name: name})
			}
			return fetch(cmd, sess, res)
		},
	}
}

// rulingsSubcommand returns the rulings subcommand.
func rulingsSubcommand(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "rulings ID | SET NUMBER",
		Short: "Fetches the rulings of a card",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return fetch(cmd, sess, scryfall.RulingsByCode{Set: args[0], Number: args[1]})
			}
			return fetch(cmd, sess, scryfall.RulingsByCardID{ID: args[0]})
		},
	}
}
