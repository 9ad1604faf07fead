// Package debug provides optional file-based debug logging.
//
// When the INVOICEKIT_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	mu      sync.Mutex
	logFile *os.File
	checked bool
)

// Init initializes debug logging to the specified file path, overriding the
// environment variable.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	checked = true
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	checked = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a message to the debug log with a timestamp. No-op unless
// logging was enabled via Init or INVOICEKIT_DEBUG.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !checked {
		initLocked(os.Getenv("INVOICEKIT_DEBUG"))
	}
	if logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(logFile, "[%s] %s\n", timestamp, msg)
}

// Dump logs a labeled deep dump of a value.
func Dump(label string, v any) {
	Log("%s: %s", label, spew.Sdump(v))
}
