package models

import (
	"strings"
	"time"
)

// Platform names a social network the backend can post to.
type Platform string

const (
	PlatformMastodon Platform = "mastodon"
	PlatformReddit   Platform = "reddit"
	PlatformLinkedIn Platform = "linkedin"
)

// Platforms lists the networks in display order.
var Platforms = []Platform{PlatformMastodon, PlatformReddit, PlatformLinkedIn}

// ParsePlatform matches s case-insensitively against the known platforms.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// Account is a linked social account.
type Account struct {
	ID          FlexString `json:"id"`
	Platform    Platform   `json:"platform"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name,omitempty"`
	InstanceURL string     `json:"instance_url,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// AuthURL is returned by the provider "auth" endpoints. IsOOB means the
// provider shows a code that must be pasted back instead of redirecting.
type AuthURL struct {
	URL   string `json:"authUrl"`
	IsOOB bool   `json:"isOOB"`
}
