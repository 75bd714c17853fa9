package report

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tumorkit/internal/curves"
	"github.com/san-kum/tumorkit/internal/describe"
	"github.com/san-kum/tumorkit/internal/distfit"
	"github.com/san-kum/tumorkit/internal/figure"
)

const previewPoints = 60

// Browser is a bubbletea model listing a ranking with a preview of the
// selected fit against the data density.
type Browser struct {
	rank    []distfit.Outcome
	density describe.Curve
	cursor  int
	offset  int

	width  int
	height int
}

// Browse builds the ranking browser for a search over xs.
func Browse(res *distfit.Result, xs []float64) Browser {
	b := Browser{rank: res.Ranking(), width: 80, height: 24}
	if d, err := describe.Density(xs, previewPoints); err == nil {
		b.density = d
	}
	return b
}

// Selected returns the outcome under the cursor.
func (b Browser) Selected() (distfit.Outcome, bool) {
	if len(b.rank) == 0 {
		return distfit.Outcome{}, false
	}
	return b.rank[b.cursor], true
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.rank)-1 {
				b.cursor++
			}
		case "home", "g":
			b.cursor = 0
		case "end", "G":
			if len(b.rank) > 0 {
				b.cursor = len(b.rank) - 1
			}
		}
		b.scroll()
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.scroll()
	}
	return b, nil
}

func (b Browser) listRows() int {
	rows := b.height/2 - 3
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (b *Browser) scroll() {
	rows := b.listRows()
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+rows {
		b.offset = b.cursor - rows + 1
	}
}

func (b Browser) View() string {
	var sb strings.Builder
	sb.WriteString(Header.Render(fmt.Sprintf("fit ranking  %d candidates", len(b.rank))) + "\n")
	if len(b.rank) == 0 {
		sb.WriteString(Warn.Render("nothing to show") + "\n")
		sb.WriteString(KeyHint.Render("q quit") + "\n")
		return sb.String()
	}

	end := b.offset + b.listRows()
	if end > len(b.rank) {
		end = len(b.rank)
	}
	for i := b.offset; i < end; i++ {
		o := b.rank[i]
		line := fmt.Sprintf("%3d  %-16s D=%.4f  p=%.4g", i+1, o.Name, o.D, o.P)
		if i == b.cursor {
			sb.WriteString(selected.Render("▸ "+line) + "\n")
		} else {
			sb.WriteString(dim.Render("  "+line) + "\n")
		}
	}

	o := b.rank[b.cursor]
	sb.WriteString("\n" + Best.Render(o.Fitted.String()) + "\n")
	if preview := b.preview(o); preview != "" {
		sb.WriteString(preview + "\n")
	}
	sb.WriteString(KeyHint.Render("↑↓ select   g/G first/last   q quit") + "\n")
	return sb.String()
}

func (b Browser) preview(o distfit.Outcome) string {
	if len(b.density.X) == 0 || o.Fitted == nil {
		return ""
	}
	pdf := make([]float64, len(b.density.X))
	for i, x := range b.density.X {
		pdf[i] = o.Fitted.PDF(x)
	}
	width := b.width - 12
	if width > previewPoints {
		width = previewPoints
	}
	if width < 20 {
		width = 20
	}
	height := b.height/2 - 4
	if height < 4 {
		height = 4
	}
	series := []curves.Series{
		{Label: "data", X: b.density.X, Y: b.density.Y},
		{Label: o.Name, X: b.density.X, Y: pdf},
	}
	return figure.Terminal(series, height, width, "blue: data density  red: "+o.Name)
}

// Run opens the browser on the terminal and blocks until the user quits.
func Run(b Browser) error {
	_, err := tea.NewProgram(b, tea.WithAltScreen()).Run()
	return err
}
