// Command scryfall queries the Scryfall API from the command line.
package main

//
// Main
//

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/mtgkit/scryfall-go/internal/log/handlers/cli"
	"github.com/mtgkit/scryfall-go/pkg/scryfall"
	"github.com/spf13/cobra"
)

// globalOptions contains the flags shared by all the subcommands.
type globalOptions struct {
	baseURL   string
	output    string
	timeout   time.Duration
	userAgent string
	verbose   bool
}

// session contains the state shared by the subcommands.
type session struct {
	opts   *globalOptions
	stdout io.Writer
}

// newClient creates a client using the global options.
func (s *session) newClient() *scryfall.Client {
	options := []scryfall.Option{
		scryfall.WithLogger(log.Log),
		scryfall.WithTimeout(s.opts.timeout),
	}
	if s.opts.userAgent != "" {
		options = append(options, scryfall.WithUserAgent(s.opts.userAgent))
	}
	return scryfall.NewWithBaseURL(s.opts.baseURL, options...)
}

// newRootCommand creates the root command writing results to stdout.
func newRootCommand(stdout io.Writer) *cobra.Command {
	sess := &session{
		opts:   &globalOptions{},
		stdout: stdout,
	}
	root := &cobra.Command{
		Use:           "scryfall",
		Short:         "Client for the Scryfall Magic: The Gathering API",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if sess.opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
			return checkOutputFormat(sess.opts.output)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&sess.opts.baseURL, "base-url", scryfall.DefaultBaseURL, "Base URL of the API")
	flags.StringVarP(&sess.opts.output, "output", "o", outputText, "Output format: text, json or yaml")
	flags.DurationVar(&sess.opts.timeout, "timeout", scryfall.DefaultTimeout, "Timeout of each request")
	flags.StringVar(&sess.opts.userAgent, "user-agent", "", "Override the User-Agent header")
	flags.BoolVarP(&sess.opts.verbose, "verbose", "v", false, "Emit debug messages")

	root.AddCommand(cardSubcommand(sess))
	root.AddCommand(printSubcommand(sess))
	root.AddCommand(namedSubcommand(sess))
	root.AddCommand(randomSubcommand(sess))
	root.AddCommand(collectionSubcommand(sess))
	root.AddCommand(rulingsSubcommand(sess))
	root.AddCommand(searchSubcommand(sess))
	root.AddCommand(autocompleteSubcommand(sess))
	root.AddCommand(setsSubcommand(sess))
	root.AddCommand(setSubcommand(sess))
	root.AddCommand(catalogSubcommand(sess))
	root.AddCommand(symbologySubcommand(sess))
	root.AddCommand(parseManaSubcommand(sess))
	root.AddCommand(bulkDataSubcommand(sess))
	return root
}

// logError logs err. API errors are rendered as a table.
func logError(logger log.Interface, err error) {
	eb, ok := scryfall.AsErrorBody(err)
	if !ok {
		logger.WithError(err).Error("scryfall failed")
		return
	}
	logger.WithFields(log.Fields{
		"type":  "section_title",
		"title": "API error",
	}).Error(err.Error())
	fields := log.Fields{
		"type":    "table",
		"code":    eb.Code,
		"status":  eb.Status,
		"details": eb.Details,
	}
	if eb.Type != "" {
		fields["kind"] = eb.Type
	}
	if len(eb.Warnings) > 0 {
		fields["warnings"] = strings.Join(eb.Warnings, "; ")
	}
	logger.WithFields(fields).Error(err.Error())
}

func main() {
	log.Log = &log.Logger{Level: log.InfoLevel, Handler: cli.Default}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		logError(log.Log, err)
		stop()
		os.Exit(1)
	}
}
