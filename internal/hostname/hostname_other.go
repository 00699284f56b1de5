//go:build !linux

package hostname

import "os"

func osHostname() (string, error) {
	return os.Hostname()
}
