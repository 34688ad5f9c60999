package main

import (
	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// fetch sends res using a new client and emits the result.
func fetch[M any](cmd *cobra.Command, sess *session, res scryfall.Resource[M]) error {
	value, err := scryfall.Request(cmd.Context(), sess.newClient(), res)
	if err != nil {
		return errors.Wrap(err, res.RequestSpec().Name)
	}
	return emit(sess.stdout, sess.opts.output, value)
}
