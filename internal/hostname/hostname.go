// Package hostname reads the name of the local machine.
package hostname

import (
	"log/slog"
)

// Fallback is returned when the hostname cannot be determined.
const Fallback = "localhost"

// Lookup returns the hostname reported by the operating system, or Fallback.
func Lookup() string {
	return lookupWith(osHostname)
}

func lookupWith(get func() (string, error)) string {
	name, err := get()
	if err != nil || name == "" {
		slog.Warn("unable to get hostname, falling back", "fallback", Fallback, "error", err)
		return Fallback
	}
	return name
}
