//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"os/signal"
	"syscall"
)

// SignalNotify asks OS to send the signals of interest to the supplied channel.
func SignalNotify(c chan os.Signal) {
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
}

// IsSignalUSR1 returns true if the supplied signal is SIGUSR1. A noop on Windows.
func IsSignalUSR1(s os.Signal) bool {
	return s == syscall.SIGUSR1
}

// IsSignalTERM returns true if the supplied signal is SIGTERM. A noop on Windows.
func IsSignalTERM(s os.Signal) bool {
	return s == syscall.SIGTERM
}

// IsSignalINT returns true if the supplied signal is SIGINT. A noop on Windows.
func IsSignalINT(s os.Signal) bool {
	return s == os.Interrupt
}
