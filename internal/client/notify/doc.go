// Package notify shows transient, stacked notifications.
//
// A Center keeps notifications in the order they were shown. Each one
// removes itself after the configured TTL (5s by default) unless it is
// dismissed first; removal is idempotent, so a timer firing after a
// dismiss does nothing. Kinds map to a fixed icon/color/label table
// rendered with lipgloss.
package notify
