// Package diag provides bark's crash log, panic recovery, and the
// small ring buffer feeding the debug/metrics overlay toggle.
//
// Grounded on eviltik-docker-tui's crashlog.go (writeCrashLog/safeGo),
// translated out of its French comments and generalized: the crash path
// is a fatal terminal-backend failure under spec.md §7, so Recover here
// also runs a caller-supplied terminal restorer before exiting, which
// eviltik-docker-tui didn't need (it ran inside bubbletea's own
// alt-screen teardown).
package diag

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"
)

// CrashLogPath is where a fatal panic's report is appended.
const CrashLogPath = "/tmp/bark-crash.log"

// WriteCrashLog appends a detailed crash report to CrashLogPath (falling
// back to stderr if the file can't be opened) and echoes a short summary
// to stderr regardless.
func WriteCrashLog(r any, goroutineName string) {
	if r == nil {
		return
	}

	f, err := os.OpenFile(CrashLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bark: failed to open crash log: %v\n", err)
		f = os.Stderr
	} else {
		defer f.Close()
	}

	if goroutineName == "" {
		goroutineName = "main"
	}

	fmt.Fprintf(f, "\n\n=== CRASH REPORT - %s ===\n\n", time.Now().Format("2006-01-02 15:04:05.000"))
	fmt.Fprintf(f, "Goroutine: %s\n\n", goroutineName)
	fmt.Fprintf(f, "Error: %v\n\n", r)

	fmt.Fprintf(f, "Crashing goroutine stack trace:\n")
	f.Write(debug.Stack())
	fmt.Fprintf(f, "\n")

	fmt.Fprintf(f, "All goroutines stack dump:\n")
	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	f.Write(buf[:n])
	fmt.Fprintf(f, "\n")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintf(f, "Goroutines:       %d\n", runtime.NumGoroutine())
	fmt.Fprintf(f, "Memory allocated: %d MB\n", m.Alloc/1024/1024)
	fmt.Fprintf(f, "Memory sys:       %d MB\n", m.Sys/1024/1024)
	fmt.Fprintf(f, "GC runs:          %d\n", m.NumGC)
	fmt.Fprintf(f, "\n")

	if f != os.Stderr {
		fmt.Fprintf(os.Stderr, "bark: fatal error: %v\n", r)
		fmt.Fprintf(os.Stderr, "bark: full crash log saved to %s\n", CrashLogPath)
	}
}

// SafeGo launches fn in its own goroutine, writing a crash log (tagged
// with name) instead of taking down the process if fn panics.
func SafeGo(name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				WriteCrashLog(r, name)
			}
		}()
		fn()
	}()
}

// Recover is deferred at the top of main. On panic it writes the crash
// log, invokes restoreTerm to leave the terminal in cooked mode (spec.md
// §7's terminal-backend failure policy), and exits with status 1.
func Recover(restoreTerm func()) {
	if r := recover(); r != nil {
		WriteCrashLog(r, "main")
		if restoreTerm != nil {
			restoreTerm()
		}
		os.Exit(1)
	}
}
