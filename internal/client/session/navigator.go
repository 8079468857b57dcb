package session

import "strings"

// Navigator sends the user to another entry point. The guard calls it with
// the login path when a check fails or on logout.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// LoginPath returns the login entry page relative to currentPath: pages
// under /views/ are one level deep.
func LoginPath(currentPath string) string {
	if strings.Contains(currentPath, "/views/") {
		return "../index.html"
	}
	return "index.html"
}
