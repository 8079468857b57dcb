package notify

import "strings"

// Kind selects the style of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
)

// ParseKind maps s to a Kind. Unknown or empty input is KindInfo.
func ParseKind(s string) Kind {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return k
	}
	return KindInfo
}
