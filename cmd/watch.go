package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/etnz/cryptfolio"
	"github.com/etnz/cryptfolio/coinmarketcap"
	"github.com/etnz/cryptfolio/cryptocompare"
	"github.com/etnz/cryptfolio/renderer"
	"github.com/google/subcommands"
	"github.com/pterm/pterm"
)

// watchCmd displays the live portfolio table.
type watchCmd struct {
	// overridden in tests
	catalog cryptfolio.Catalog
	feed    cryptfolio.PriceFeed
	screen  renderer.Screen
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "display the live portfolio table (default)" }
func (*watchCmd) Usage() string {
	return `cryptfolio [-currency <code>] [-interval <minutes>] [-portfolio-file <path>] watch

  Resolves the portfolio holdings against the market catalog, then refreshes
  their price, value and 24h change every interval until interrupted.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, interval, holdings, status := settings()
	if status != subcommands.ExitSuccess {
		return status
	}

	renderer.Banner(stdout, cur, interval)

	entries, err := c.resolve(ctx, holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	screen := c.screen
	if screen == nil {
		term, err := renderer.NewTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting the live table: %v\n", err)
			return subcommands.ExitFailure
		}
		defer term.Stop()
		screen = term
	}

	feed := c.feed
	if feed == nil {
		feed = cryptocompare.NewClient()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w := &cryptfolio.Watcher{
		Feed:     feed,
		Display:  renderer.NewBoard(screen),
		Entries:  entries,
		Currency: cur,
		Interval: interval,
	}
	if err := w.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolve matches holdings with the catalog behind a spinner.
func (c *watchCmd) resolve(ctx context.Context, holdings []cryptfolio.Holding) ([]cryptfolio.CatalogEntry, error) {
	cat := c.catalog
	if cat == nil {
		cat = coinmarketcap.NewClient()
	}

	spinner, _ := pterm.DefaultSpinner.Start("Resolving portfolio...")
	res, err := cryptfolio.ResolveHoldings(ctx, cat, holdings)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Could not reach the market catalog")
		}
		return nil, err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("%d of %d holdings listed", len(res.Entries), len(holdings)))
	}
	return res.Entries, nil
}
