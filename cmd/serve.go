package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/etnz/cryptfolio"
	"github.com/etnz/cryptfolio/coinmarketcap"
	"github.com/etnz/cryptfolio/cryptocompare"
	"github.com/etnz/cryptfolio/stream"
	"github.com/google/subcommands"
)

// serveCmd runs the watch cycles headless and streams them over a websocket.
type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "stream the live portfolio over a websocket" }
func (*serveCmd) Usage() string {
	return `cryptfolio [-currency <code>] [-interval <minutes>] serve [-addr :8080]

  Refreshes the portfolio every interval like 'watch', and publishes every
  refresh as JSON to the websocket clients connected on /ws.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "listening address")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, interval, holdings, status := settings()
	if status != subcommands.ExitSuccess {
		return status
	}

	res, err := cryptfolio.ResolveHoldings(ctx, coinmarketcap.NewClient(), holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	hub := stream.NewHub()
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: c.addr, Handler: mux}

	served := make(chan error, 1)
	go func() { served <- srv.ListenAndServe() }()
	fmt.Fprintf(stdout, "Streaming %d holdings in %s on ws://%s/ws\n", len(res.Entries), cur.Code, c.addr)

	w := &cryptfolio.Watcher{
		Feed:     cryptocompare.NewClient(),
		Display:  hub,
		Entries:  res.Entries,
		Currency: cur,
		Interval: interval,
	}
	watched := make(chan error, 1)
	go func() { watched <- w.Run(ctx) }()

	select {
	case err = <-served:
		stop()
		<-watched
	case err = <-watched:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := srv.Shutdown(shutdownCtx); serr != nil {
		log.Printf("shutdown: %v", serr)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
