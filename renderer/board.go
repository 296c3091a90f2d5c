package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/cryptfolio"
	"github.com/fatih/color"
)

// Screen is a terminal region that is redrawn as a whole.
type Screen interface {
	Update(content string)
}

// widths of the symbol, name, price, amount, value, 24h change and market cap columns.
var columnWidths = [7]int{10, 30, 15, 15, 15, 15, 25}

var (
	headerStyle = color.New(color.Underline, color.Bold)
	totalStyle  = color.New(color.Bold)
	liveStyle   = color.New(color.FgGreen)
	faintStyle  = color.New(color.Faint)
)

const fetchingStatus = "Fetching data..."

// formatCells lays cells out in fixed width columns, separated by a space.
func formatCells(cells [7]string) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = lipgloss.NewStyle().Width(columnWidths[i]).MaxHeight(1).Render(c)
	}
	return strings.Join(out, " ")
}

func headerLine() string {
	labels := [7]string{"SYMBOL", "NAME", "PRICE", "AMOUNT", "VALUE", "24H CHANGE", "MARKET CAP"}
	for i, l := range labels {
		labels[i] = headerStyle.Sprint(l)
	}
	return formatCells(labels)
}

// line is one line of the board.
type line interface {
	render() string
}

func writeLine(s *strings.Builder, l line) {
	s.WriteString(l.render())
	s.WriteString("\n")
}

// rowLine displays one holding. It is created on the first cycle and updated in place.
type rowLine struct {
	symbol string
	text   string
}

func newRowLine(r cryptfolio.Row) *rowLine {
	l := &rowLine{symbol: r.Symbol}
	l.update(r)
	return l
}

func (l *rowLine) render() string { return l.text }

// update replaces the content of the line, and reports whether it changed.
func (l *rowLine) update(r cryptfolio.Row) bool {
	text := formatCells([7]string{r.Symbol, r.Name, r.Price, r.Amount, r.Value, r.Change, r.MarketCap})
	if text == l.text {
		return false
	}
	l.text = text
	return true
}

// totalLine displays the portfolio total.
type totalLine struct {
	text string
}

func (l *totalLine) render() string { return l.text }

func (l *totalLine) update(c *cryptfolio.Cycle) bool {
	text := totalStyle.Sprint("TOTAL: " + c.FormattedTotal())
	if text == l.text {
		return false
	}
	l.text = text
	return true
}

// Board is the live portfolio table: a header, one line per holding, the
// total and a status line.
//
// Lines are laid out by the first cycle. Later cycles replace the lines in
// place, locating them by symbol: the order never changes, and a holding
// missing from a cycle keeps its previous content.
type Board struct {
	screen Screen
	header string
	rows   []*rowLine
	index  map[string]int // symbol -> rows index
	total  *totalLine
	status string
	drawn  string // last content sent to the screen
}

// NewBoard returns an empty Board drawing on s.
func NewBoard(s Screen) *Board {
	return &Board{screen: s, index: make(map[string]int)}
}

// Fetching shows the loading indicator.
func (b *Board) Fetching() {
	b.status = fetchingStatus
	b.draw()
}

// Render lays out the board for the first cycle.
func (b *Board) Render(c *cryptfolio.Cycle) {
	b.header = headerLine()
	b.rows = b.rows[:0]
	b.index = make(map[string]int, len(c.Rows))
	for _, r := range c.Rows {
		if _, dup := b.index[r.Symbol]; dup {
			continue
		}
		b.index[r.Symbol] = len(b.rows)
		b.rows = append(b.rows, newRowLine(r))
	}
	b.total = new(totalLine)
	b.total.update(c)
	b.status = liveStatus(c)
	b.draw()
}

// Update replaces the lines of the holdings present in c, and the total.
func (b *Board) Update(c *cryptfolio.Cycle) {
	b.update(c)
}

// update returns the number of lines that changed.
func (b *Board) update(c *cryptfolio.Cycle) (changed int) {
	if b.total == nil {
		b.Render(c)
		return len(b.rows) + 1
	}
	for _, r := range c.Rows {
		i, ok := b.index[r.Symbol]
		if !ok {
			continue // not laid out by the first cycle
		}
		if b.rows[i].update(r) {
			changed++
		}
	}
	if b.total.update(c) {
		changed++
	}
	b.status = liveStatus(c)
	b.draw()
	return changed
}

func liveStatus(c *cryptfolio.Cycle) string {
	return liveStyle.Sprint("● live") + faintStyle.Sprint("  updated "+c.At.Format("15:04:05"))
}

// String returns the full content of the board.
func (b *Board) String() string {
	var s strings.Builder
	if b.header != "" {
		s.WriteString(b.header)
		s.WriteString("\n")
	}
	for _, r := range b.rows {
		writeLine(&s, r)
	}
	if b.total != nil {
		s.WriteString("\n")
		writeLine(&s, b.total)
		s.WriteString("\n")
	}
	s.WriteString(b.status)
	s.WriteString("\n")
	return s.String()
}

// draw sends the board to the screen, unless nothing changed since the last draw.
func (b *Board) draw() {
	content := b.String()
	if content == b.drawn {
		return
	}
	b.drawn = content
	b.screen.Update(content)
}
