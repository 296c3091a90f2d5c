package cryptfolio

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cycle is the outcome of one fetch, enrich and sort pass.
type Cycle struct {
	Seq      int             `json:"seq"` // starts at 1
	At       time.Time       `json:"at"`
	Currency Currency        `json:"currency"`
	Rows     []Row           `json:"rows"`              // sorted by market cap
	Missing  []CatalogEntry  `json:"missing,omitempty"` // entries without a quote this cycle
	Total    decimal.Decimal `json:"total"`
}

// FormattedTotal returns the total with the currency symbol, e.g. "$1721.85".
func (c *Cycle) FormattedTotal() string { return c.Currency.Symbol + FormatTotal(c.Total) }

// Display shows the cycles produced by a Watcher.
//
// Render is called once with the first cycle, Update with every following one.
// Fetching is called whenever a network call starts.
type Display interface {
	Fetching()
	Render(c *Cycle)
	Update(c *Cycle)
}

// Watcher periodically refreshes the quotes of a fixed set of entries.
type Watcher struct {
	Feed     PriceFeed
	Display  Display
	Entries  []CatalogEntry
	Currency Currency
	Interval time.Duration

	now func() time.Time // for tests
}

// Run performs a first cycle immediately, then one cycle per Interval until
// ctx is done. Any cycle error stops Run and is returned.
//
// Cycles never overlap: a slow cycle delays the next one, missed ticks are dropped.
func (w *Watcher) Run(ctx context.Context) error {
	c, err := w.cycle(ctx, 1)
	if err != nil {
		return err
	}
	w.Display.Render(c)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()
	for seq := 2; ; seq++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}
		c, err := w.cycle(ctx, seq)
		if err != nil {
			if ctx.Err() != nil {
				return nil // interrupted while fetching
			}
			return err
		}
		w.Display.Update(c)
	}
}

func (w *Watcher) cycle(ctx context.Context, seq int) (*Cycle, error) {
	w.Display.Fetching()
	quotes, err := w.Feed.Quotes(ctx, w.Entries, w.Currency)
	if err != nil {
		return nil, err
	}
	rows, missing := Enrich(w.Entries, quotes, w.Currency)
	SortByMarketCap(rows)
	for _, m := range missing {
		log.Printf("cycle %d: no quote for %s", seq, m.Symbol)
	}

	now := time.Now
	if w.now != nil {
		now = w.now
	}
	return &Cycle{
		Seq:      seq,
		At:       now(),
		Currency: w.Currency,
		Rows:     rows,
		Missing:  missing,
		Total:    CalculateTotal(rows),
	}, nil
}

// ParseInterval parses a polling interval expressed in minutes. Fractions are allowed.
func ParseInterval(minutes string) (time.Duration, error) {
	m, err := strconv.ParseFloat(strings.TrimSpace(minutes), 64)
	if err != nil || !(m > 0) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%w: %q", ErrIntervalInvalid, minutes)
	}
	ns := m * float64(time.Minute)
	if ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is too long", ErrIntervalInvalid, minutes)
	}
	d := time.Duration(ns)
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q is too short", ErrIntervalInvalid, minutes)
	}
	return d, nil
}
