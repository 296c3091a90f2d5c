package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/cryptfolio"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Terminal is a Screen redrawn in place on the standard output.
type Terminal struct {
	area *pterm.AreaPrinter
}

// NewTerminal starts a live area on the standard output.
func NewTerminal() (*Terminal, error) {
	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return nil, err
	}
	return &Terminal{area: area}, nil
}

// Update replaces the area content.
func (t *Terminal) Update(content string) { t.area.Update(content) }

// Stop releases the area, leaving its last content on screen.
func (t *Terminal) Stop() error { return t.area.Stop() }

// Banner prints the application name, the reference currency and the polling interval.
func Banner(w io.Writer, cur cryptfolio.Currency, interval time.Duration) {
	color.New(color.FgWhite, color.BgGreen, color.Bold).Fprintln(w, " CRYPTFOLIO v"+cryptfolio.Version+" ")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Currency: %s (%s)\n", cur.Code, cur.Symbol)
	fmt.Fprintf(w, "Polling interval: %v minute(s)\n\n", interval.Minutes())
}
