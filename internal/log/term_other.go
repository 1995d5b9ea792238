//go:build !linux

package log

// isTerminal always reports false on platforms without a termios probe,
// which leaves log output uncolored there.
func isTerminal(fd uintptr) bool {
	return false
}
