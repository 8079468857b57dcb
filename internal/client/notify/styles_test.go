package notify

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStyleTable(t *testing.T) {
	tests := []struct {
		kind  Kind
		icon  string
		color string
	}{
		{KindSuccess, "✔", "#10b981"},
		{KindError, "✖", "#ef4444"},
		{KindWarning, "⚠", "#f59e0b"},
		{KindInfo, "ℹ", "#3b82f6"},
		{Kind("other"), "ℹ", "#3b82f6"},
	}
	for _, tt := range tests {
		st := StyleFor(tt.kind)
		assert.Equal(t, tt.icon, st.Icon, tt.kind)
		assert.Equal(t, lipgloss.Color(tt.color), st.Color, tt.kind)
	}
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindSuccess, ParseKind("success"))
	assert.Equal(t, KindError, ParseKind(" Error "))
	assert.Equal(t, KindInfo, ParseKind(""))
	assert.Equal(t, KindInfo, ParseKind("fatal"))
}

func TestRenderer_PrintList(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.PrintList(nil)
	assert.Contains(t, buf.String(), "No active notifications.")

	buf.Reset()
	r.PrintList([]Notification{
		{ID: "0123456789abcdef", Message: "one", Kind: KindWarning},
		{ID: "abc", Message: "two", Kind: KindInfo},
	})
	out := buf.String()
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestRenderer_NilSafe(t *testing.T) {
	var r *Renderer
	assert.NotPanics(t, func() { r.Print(Notification{Message: "x"}) })
}
