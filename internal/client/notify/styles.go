package notify

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Style is how one Kind is drawn.
type Style struct {
	Icon  string
	Color lipgloss.Color
	Label string
}

var styles = map[Kind]Style{
	KindSuccess: {Icon: "✔", Color: lipgloss.Color("#10b981"), Label: "Success"},
	KindError:   {Icon: "✖", Color: lipgloss.Color("#ef4444"), Label: "Error"},
	KindWarning: {Icon: "⚠", Color: lipgloss.Color("#f59e0b"), Label: "Warning"},
	KindInfo:    {Icon: "ℹ", Color: lipgloss.Color("#3b82f6"), Label: "Info"},
}

// StyleFor returns the style of k, falling back to info.
func StyleFor(k Kind) Style {
	if s, ok := styles[k]; ok {
		return s
	}
	return styles[KindInfo]
}

// Renderer formats notifications for a terminal.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Line renders n as a single line: colored icon and label, then the
// message.
func (r *Renderer) Line(n Notification) string {
	st := StyleFor(n.Kind)
	badge := lipgloss.NewStyle().Bold(true).Foreground(st.Color).Render(st.Icon + " " + st.Label)
	return badge + "  " + n.Message
}

// Print writes n followed by a newline.
func (r *Renderer) Print(n Notification) {
	if r == nil || r.w == nil {
		return
	}
	_, _ = fmt.Fprintln(r.w, r.Line(n))
}

// PrintList writes the stack with short ids usable with dismiss.
func (r *Renderer) PrintList(ns []Notification) {
	if r == nil || r.w == nil {
		return
	}
	if len(ns) == 0 {
		_, _ = fmt.Fprintln(r.w, "No active notifications.")
		return
	}
	id := lipgloss.NewStyle().Faint(true)
	var b strings.Builder
	for _, n := range ns {
		b.WriteString(id.Render(ShortID(n.ID)))
		b.WriteString("  ")
		b.WriteString(r.Line(n))
		b.WriteByte('\n')
	}
	_, _ = io.WriteString(r.w, b.String())
}

// ShortID is the prefix of id shown to users.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
