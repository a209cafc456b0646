//go:build linux

package proctitle

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Set renames the process for ps and top. Linux keeps at most 15 bytes.
func Set(title string) error {
	title, err := apply(title)
	if err != nil || title == "" {
		return err
	}
	name := make([]byte, maxNameLen+1)
	copy(name, truncate(title))
	if err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(&name[0])), 0, 0, 0); err != nil {
		return fmt.Errorf("proctitle: %w", err)
	}
	return nil
}
