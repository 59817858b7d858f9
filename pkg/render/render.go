// Package render turns estimator data into terminal output: styled text for
// people, JSON or YAML for scripts. Renderers only read the data they get.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a --output value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	muted   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	total   lipgloss.Style
	info    lipgloss.Style
	danger  lipgloss.Style
	pills   map[string]lipgloss.Style
	cell    lipgloss.Style
	header  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	pill := r.NewStyle().Padding(0, 1)

	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		section: r.NewStyle().Bold(true).Underline(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		label:   r.NewStyle().Foreground(lipgloss.Color("7")),
		value:   r.NewStyle().Bold(true),
		total:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		info:    r.NewStyle().Foreground(lipgloss.Color("14")),
		danger:  r.NewStyle().Foreground(lipgloss.Color("9")),
		pills: map[string]lipgloss.Style{
			"ok":      pill.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
			"danger":  pill.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
			"warn":    pill.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
			"neutral": pill.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		},
		cell:   r.NewStyle().PaddingRight(2),
		header: r.NewStyle().Bold(true).PaddingRight(2),
	}
}

// Renderer writes to one output in one format.
type Renderer struct {
	w      io.Writer
	format Format
	st     styles
}

// New returns a Renderer for w. The color profile is detected from w, so
// plain writers get text without escape codes.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{
		w:      w,
		format: format,
		st:     newStyles(lipgloss.NewRenderer(w)),
	}
}

// NewStyled returns a text Renderer for w styled for lr. Interactive views
// use it to draw into buffers that end up on a terminal.
func NewStyled(w io.Writer, lr *lipgloss.Renderer) *Renderer {
	return &Renderer{
		w:      w,
		format: FormatText,
		st:     newStyles(lr),
	}
}

// Format returns the output format of r.
func (r *Renderer) Format() Format {
	return r.format
}

// data writes v as JSON or YAML and reports whether it did. Text output is
// left to the caller.
func (r *Renderer) data(v any) (bool, error) {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("could not encode json: %w", err)
		}

		return true, nil
	case FormatYAML:
		out, err := toYAML(v)
		if err != nil {
			return true, err
		}
		_, err = r.w.Write(out)

		return true, err
	default:
		return false, nil
	}
}

// toYAML encodes v through its JSON form so YAML keys match the API field
// names and keep their order.
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not encode yaml: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("could not encode yaml: %w", err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("could not encode yaml: %w", err)
	}

	return out, nil
}

// blockStyle drops the flow and quoting styles JSON input parses into.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Data writes v as JSON or YAML, or with its default format in text mode.
func (r *Renderer) Data(v any) error {
	if ok, err := r.data(v); ok {
		return err
	}

	return r.println(fmt.Sprint(v))
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)

	return err
}

// Message writes a plain informational line in text mode only.
func (r *Renderer) Message(msg string) error {
	if r.format != FormatText {
		return nil
	}

	return r.println(r.st.info.Render(msg))
}

// Error writes a user facing error line in text mode only.
func (r *Renderer) Error(msg string) error {
	if r.format != FormatText || msg == "" {
		return nil
	}

	return r.println(r.st.danger.Render(msg))
}

// table renders rows under headers with aligned columns.
func (r *Renderer) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = r.st.header.Width(widths[i] + 2).Render(h)
	}
	lines = append(lines, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	for _, row := range rows {
		for i, c := range row {
			cells[i] = r.st.cell.Width(widths[i] + 2).Render(c)
		}
		lines = append(lines, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	}

	return strings.Join(lines, "\n")
}
