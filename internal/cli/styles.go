// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/utils"
)

// Color palette
var (
	primaryColor   = lipgloss.Color("#3B82F6") // Blue
	errorColor     = lipgloss.Color("#DC2626") // Red
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = lipgloss.Color("#FFA500") // Orange
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor).
			MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

// Printer writes styled messages. Errors and warnings go to the error
// writer, everything else to out.
type Printer struct {
	out io.Writer
	err io.Writer
}

func NewPrinter(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

func (p *Printer) Error(message string) {
	fmt.Fprintf(p.err, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

func (p *Printer) Warning(message string) {
	fmt.Fprintf(p.err, "%s %s\n", HighlightStyle.Render("Warning:"), message)
}

func (p *Printer) Success(message string) {
	fmt.Fprintf(p.out, "%s %s\n", SuccessStyle.Render("✓"), message)
}

func (p *Printer) Info(key, value string) {
	fmt.Fprintf(p.out, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

func (p *Printer) Section(title string) {
	fmt.Fprintln(p.out, HeaderStyle.Render(title))
}

// Status prints a session snapshot in a box.
func (p *Printer) Status(st audtrim.Status) {
	fmt.Fprintln(p.out, BoxStyle.Render(RenderStatus(st)))
}

// RenderStatus lays out st as key/value lines.
func RenderStatus(st audtrim.Status) string {
	if !st.Loaded {
		return KeyStyle.Render(st.String())
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render(st.Name))
	b.WriteString("\n")

	row := func(key, value string) {
		b.WriteString(KeyStyle.Render(fmt.Sprintf("%-11s", key+":")))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	if st.Cut != nil {
		row("Cut", fmt.Sprintf("%s s to %s s",
			utils.FormatSeconds(st.Cut.Start), utils.FormatSeconds(st.Cut.End)))
		row("New length", utils.FormatSeconds(st.Duration)+" s")
	} else {
		row("Duration", utils.FormatSeconds(st.Duration)+" s")
	}
	row("Format", fmt.Sprintf("%d Hz, %s", st.SampleRate, channelName(st.Channels)))

	return strings.TrimSuffix(b.String(), "\n")
}

func channelName(n int) string {
	switch n {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d channels", n)
	}
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
