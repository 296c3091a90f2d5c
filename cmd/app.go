// Package cmd implements the CLI application to watch a crypto portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cryptfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&watchCmd{}, "portfolio")
	c.Register(&serveCmd{}, "portfolio")

	c.Register(&limitCmd{}, "api")
	c.Register(&currenciesCmd{}, "api")

	c.Register(&topicCmd{}, "help")
}

// Environment variables read when the matching flag is not set.
const (
	EnvPortfolio = "CRYPTFOLIO_PORTFOLIO"
	EnvCurrency  = "CRYPTFOLIO_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	currencyFlag  = flag.String("currency", "", "Reference fiat currency code (default $"+EnvCurrency+" or USD)")
	intervalFlag  = flag.String("interval", "2", "Polling interval in minutes")
	portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio JSON file (default $"+EnvPortfolio+" or ~/.cryptfolio/portfolio.json)")

	// Limit requests the rate-limit report instead of the live table.
	Limit = flag.Bool("limit", false, "Print the remaining API calls and exit")
	// Verbose keeps the logs on stderr. They are discarded otherwise, as they would garble the live table.
	Verbose = flag.Bool("v", false, "Verbose logging")
)

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// printMarkdown renders markdown for the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	fmt.Fprint(stdout, md)
}

// currency returns the reference currency selected by the flag, the environment, or USD.
func currency() (cryptfolio.Currency, error) {
	code := *currencyFlag
	if code == "" {
		code = os.Getenv(EnvCurrency)
	}
	if code == "" {
		code = "USD"
	}
	return cryptfolio.AuthorizeCurrency(code)
}

// portfolioPath returns the portfolio file selected by the flag, the environment, or the default one.
func portfolioPath() (string, error) {
	if *portfolioFile != "" {
		return *portfolioFile, nil
	}
	if p := os.Getenv(EnvPortfolio); p != "" {
		return p, nil
	}
	return cryptfolio.DefaultPortfolioPath()
}

// settings validates the global flags shared by the watching commands and
// loads the portfolio. Problems are reported on stderr, with a non success status.
func settings() (cur cryptfolio.Currency, interval time.Duration, holdings []cryptfolio.Holding, status subcommands.ExitStatus) {
	cur, err := currency()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Currency is not supported. Please select one from the available list.")
		fmt.Fprintf(os.Stderr, "Supported: %s\n", supportedCodes())
		return cur, 0, nil, subcommands.ExitUsageError
	}
	interval, err = cryptfolio.ParseInterval(*intervalFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Interval must be a number value.")
		return cur, 0, nil, subcommands.ExitUsageError
	}

	path, err := portfolioPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating portfolio: %v\n", err)
		return cur, 0, nil, subcommands.ExitFailure
	}
	holdings, err = cryptfolio.LoadHoldings(path)
	var missing *cryptfolio.ConfigMissingError
	switch {
	case errors.As(err, &missing):
		fmt.Fprintln(os.Stderr, "File: portfolio.json not found!")
		fmt.Fprintf(os.Stderr, "Path searched: %s\n", missing.Path)
		return cur, 0, nil, subcommands.ExitFailure
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return cur, 0, nil, subcommands.ExitFailure
	}
	return cur, interval, holdings, subcommands.ExitSuccess
}

func supportedCodes() string {
	var codes []string
	for _, c := range cryptfolio.SupportedCurrencies() {
		codes = append(codes, c.Code)
	}
	return strings.Join(codes, ", ")
}
