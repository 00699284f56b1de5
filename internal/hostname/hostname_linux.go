//go:build linux

package hostname

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func osHostname() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	return unix.ByteSliceToString(uts.Nodename[:]), nil
}
