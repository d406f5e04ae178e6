// Package lipgloss renders c7 output for the terminal: titled tables,
// bordered panels, highlighted JSON and status lines.
package lipgloss

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/context7"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	colorCyan  = lipgloss.Color("6")
	colorGreen = lipgloss.Color("2")
	colorBlue  = lipgloss.Color("4")
	colorRed   = lipgloss.Color("1")
)

// Console writes styled output to a single writer.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	width    int
}

// NewConsole returns a Console that writes plain text to w: no colors and
// no wrapping.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.Ascii)
	return &Console{w: w, renderer: r}
}

// NewTerminalConsole returns a Console for f. When f is a terminal, colors
// follow the environment (NO_COLOR is honored) and panels wrap to the
// terminal width.
func NewTerminalConsole(f *os.File) *Console {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return NewConsole(f)
	}
	c := &Console{w: f, renderer: lipgloss.NewRenderer(f)}
	if width, _, err := term.GetSize(fd); err == nil {
		c.width = width
	}
	return c
}

func (c *Console) colored() bool {
	return c.renderer.ColorProfile() != termenv.Ascii
}

// Println writes s followed by a newline.
func (c *Console) Println(s string) {
	fmt.Fprintln(c.w, s)
}

// Error writes "Error: msg" with a bold red label.
func (c *Console) Error(msg string) {
	label := c.renderer.NewStyle().Bold(true).Foreground(colorRed).Render("Error:")
	fmt.Fprintf(c.w, "%s %s\n", label, msg)
}

// Success writes label in green followed by value.
func (c *Console) Success(label, value string) {
	fmt.Fprintf(c.w, "%s %s\n", c.renderer.NewStyle().Foreground(colorGreen).Render(label), value)
}

// Highlight writes label followed by value in bold green.
func (c *Console) Highlight(label, value string) {
	fmt.Fprintf(c.w, "%s %s\n", label, c.renderer.NewStyle().Bold(true).Foreground(colorGreen).Render(value))
}

// Table writes a titled table. The first column is cyan, the second green.
func (c *Console) Table(title string, headers []string, rows [][]string) {
	columnColors := []lipgloss.Color{colorCyan, colorGreen}
	headerStyle := c.renderer.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := c.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(c.renderer.NewStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col < len(columnColors) {
				return cellStyle.Foreground(columnColors[col])
			}
			return cellStyle
		})

	fmt.Fprintln(c.w, c.renderer.NewStyle().Italic(true).Render(title))
	fmt.Fprintln(c.w, t.Render())
}

// Panel writes body inside a blue rounded border with title above it.
func (c *Console) Panel(title, body string) {
	style := c.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Padding(0, 1)
	if c.width > 2 {
		style = style.Width(c.width - 2)
	}

	fmt.Fprintln(c.w, c.renderer.NewStyle().Bold(true).Render(title))
	fmt.Fprintln(c.w, style.Render(body))
}

// JSON writes p as indented JSON, syntax highlighted when colors are on.
func (c *Console) JSON(p any) error {
	s, err := context7.FormatJSON(p)
	if err != nil {
		return err
	}
	if !c.colored() {
		fmt.Fprintln(c.w, s)
		return nil
	}
	if err := quick.Highlight(c.w, s, "json", "terminal256", "monokai"); err != nil {
		return err
	}
	fmt.Fprintln(c.w)
	return nil
}

// Detect returns a terminal Console when w is an *os.File and a plain
// Console otherwise.
func Detect(w io.Writer) *Console {
	if f, ok := w.(*os.File); ok {
		return NewTerminalConsole(f)
	}
	return NewConsole(w)
}
