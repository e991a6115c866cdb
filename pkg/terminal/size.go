// Package terminal answers the two questions the one-shot renderer has
// about its output: how big is the terminal, and can it take color.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size is the terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// DetectSize returns the current terminal dimensions, trying in order:
//
//  1. TIOCGWINSZ ioctl on stdout, then stderr (stdout may be redirected)
//  2. COLUMNS/LINES environment variables
//  3. 80x24
func DetectSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, ok := sizeFromIoctl(fd); ok {
			return s
		}
	}
	return sizeFromEnv()
}

func sizeFromIoctl(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

func sizeFromEnv() Size {
	s := Size{Cols: 80, Rows: 24}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		s.Cols = cols
	}
	if rows, err := strconv.Atoi(os.Getenv("LINES")); err == nil && rows > 0 {
		s.Rows = rows
	}
	return s
}
