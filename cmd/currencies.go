package cmd

import (
	"context"
	"flag"

	"github.com/etnz/cryptfolio"
	"github.com/etnz/cryptfolio/renderer"
	"github.com/google/subcommands"
)

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list the supported reference currencies" }
func (*currenciesCmd) Usage() string {
	return `cryptfolio currencies

  Lists the fiat currency codes accepted by -currency.
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {}

func (c *currenciesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.CurrenciesMarkdown(cryptfolio.SupportedCurrencies()))
	return subcommands.ExitSuccess
}
