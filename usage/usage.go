// Package usage renders help pages from a composed [meta.Meta] tree.
//
// The core keeps the grammar description accurate; this package owns the
// presentation: the usage line, the two-column option and command tables,
// and surrounding descriptive text. Section titles are styled with lipgloss,
// which degrades to plain text when the output profile has no color support.
package usage

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/d86leader/bpaf/meta"
)

// Page is everything needed to render one help page.
type Page struct {
	Meta    meta.Meta
	Descr   string // one-line description shown first
	Header  string // text between the usage line and the option table
	Footer  string // text after the tables
	Usage   string // overrides the generated usage line when set
	Version string // adds the --version row when set
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)

	helpItem = meta.Item{
		Kind:  meta.KindFlag,
		Short: 'h',
		Long:  "help",
		Help:  "Prints help information",
	}
	versionItem = meta.Item{
		Kind:  meta.KindFlag,
		Short: 'V',
		Long:  "version",
		Help:  "Prints version information",
	}
)

const fallbackWidth = 80

// Width returns the rendering width: the terminal width when stdout is a
// terminal, 80 columns otherwise.
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallbackWidth
}

// Render produces the complete help page text.
func Render(page Page) string {
	width := Width()
	var b strings.Builder
	if page.Descr != "" {
		b.WriteString(page.Descr)
		b.WriteString("\n\n")
	}

	usageLine := page.Usage
	if usageLine == "" {
		usageLine = page.Meta.Usage()
	}
	b.WriteString(titleStyle.Render("Usage:"))
	if usageLine != "" {
		b.WriteByte(' ')
		b.WriteString(usageLine)
	}
	b.WriteByte('\n')

	if page.Header != "" {
		b.WriteByte('\n')
		b.WriteString(page.Header)
		b.WriteByte('\n')
	}

	var options, commands []meta.Item
	for _, it := range page.Meta.Items() {
		switch it.Kind {
		case meta.KindFlag:
			options = append(options, it)
		case meta.KindCommand:
			commands = append(commands, it)
		}
	}
	options = append(options, helpItem)
	if page.Version != "" {
		options = append(options, versionItem)
	}

	b.WriteByte('\n')
	b.WriteString(titleStyle.Render("Available options:"))
	b.WriteByte('\n')
	b.WriteString(table(optionRows(options), width))

	if len(commands) > 0 {
		b.WriteByte('\n')
		b.WriteString(titleStyle.Render("Available commands:"))
		b.WriteByte('\n')
		b.WriteString(table(commandRows(commands), width))
	}

	if page.Footer != "" {
		b.WriteByte('\n')
		b.WriteString(page.Footer)
		b.WriteByte('\n')
	}
	return b.String()
}

type row struct {
	label string
	help  string
}

func optionRows(items []meta.Item) []row {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		var names []string
		if it.Short != 0 {
			names = append(names, "-"+string(it.Short))
		}
		if it.Long != "" {
			names = append(names, "--"+it.Long)
		}
		label := strings.Join(names, ", ")
		if it.Metavar != "" {
			label += " " + it.Metavar
		}
		rows = append(rows, row{label: label, help: it.Help})
	}
	return rows
}

func commandRows(items []meta.Item) []row {
	rows := make([]row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row{label: it.Long, help: it.Help})
	}
	return rows
}

// table lays rows out in two columns, padding labels to the widest one and
// wrapping help text to the remaining width.
func table(rows []row, width int) string {
	var maxLen int
	for _, r := range rows {
		if len(r.label) > maxLen {
			maxLen = len(r.label)
		}
	}
	helpWidth := width - maxLen - 8
	if helpWidth < 20 {
		helpWidth = 20
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString("    ")
		b.WriteString(r.label)
		if r.help == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(strings.Repeat(" ", maxLen-len(r.label)))
		b.WriteString("    ")
		for i, line := range wrap(r.help, helpWidth) {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", maxLen+8))
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	lines = append(lines, line.String())
	return lines
}
