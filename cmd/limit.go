package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cryptfolio"
	"github.com/etnz/cryptfolio/cryptocompare"
	"github.com/etnz/cryptfolio/renderer"
	"github.com/google/subcommands"
)

// rateLimiter reports the remaining API calls.
type rateLimiter interface {
	RateLimit(ctx context.Context) (cryptfolio.RateLimit, error)
}

type limitCmd struct {
	source rateLimiter // overridden in tests
}

func (*limitCmd) Name() string     { return "limit" }
func (*limitCmd) Synopsis() string { return "print the remaining price API calls" }
func (*limitCmd) Usage() string {
	return `cryptfolio limit

  Prints how many price API calls are left this hour, minute and second.
  Same as 'cryptfolio -limit'.
`
}

func (c *limitCmd) SetFlags(f *flag.FlagSet) {}

func (c *limitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	source := c.source
	if source == nil {
		source = cryptocompare.NewClient()
	}
	rl, err := source.RateLimit(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rate limit: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RateLimitMarkdown(rl))
	return subcommands.ExitSuccess
}
