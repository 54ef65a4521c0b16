//nolint:revive // Package name kept as "log" for stable internal imports.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	mu        sync.Mutex
	debugMode = false
	stdout    io.Writer = os.Stdout
	stderr    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debugMode = enabled
}

// SetOutput redirects informational and error output. A nil writer restores the default.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	stdout = out
	stderr = errOut
}

func emit(w *io.Writer, prefix, format string, elem ...any) {
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintln(*w, prefix+fmt.Sprintf(format, elem...))
}

func debugf(prefix, format string, elem ...any) {
	mu.Lock()
	enabled := debugMode
	mu.Unlock()
	if enabled {
		emit(&stdout, color.CyanString(prefix), format, elem...)
	}
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	debugf("[DEBUG] ", format, elem...)
}

// DebugH2 logs indented debug messages when debug mode is enabled
func DebugH2(format string, elem ...any) {
	debugf("  [DEBUG] ", format, elem...)
}

// DebugH3 logs more indented debug messages when debug mode is enabled
func DebugH3(format string, elem ...any) {
	debugf("    [DEBUG] ", format, elem...)
}

// Fatal logs an error message and exits the program
func Fatal(args ...interface{}) {
	var message string

	switch len(args) {
	case 0:
		message = "fatal error occurred"
	case 1:
		switch v := args[0].(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		default:
			message = fmt.Sprintf("%v", v)
		}
	default:
		if format, ok := args[0].(string); ok {
			message = fmt.Sprintf(format, args[1:]...)
		} else {
			message = fmt.Sprint(args...)
		}
	}

	for _, line := range strings.Split(strings.TrimSpace(message), "\n") {
		emit(&stderr, color.RedString("[x] "), "%s", line)
	}
	os.Exit(1)
}

// Error logs an error message to stderr
func Error(format string, elem ...any) {
	emit(&stderr, color.RedString("[x] "), format, elem...)
}

// ErrorH2 logs an indented error message to stderr
func ErrorH2(format string, elem ...any) {
	emit(&stderr, color.RedString("  [x] "), format, elem...)
}

// Info logs an informational message
func Info(format string, elem ...any) {
	emit(&stdout, color.BlueString("[x] "), format, elem...)
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	emit(&stdout, color.GreenString("  [x] "), format, elem...)
}

// InfoH3 logs a double-indented informational message
func InfoH3(format string, elem ...any) {
	emit(&stdout, color.YellowString("    [x] "), format, elem...)
}

// Success reports a completed user action, such as a login or registration.
func Success(format string, elem ...any) {
	emit(&stdout, color.GreenString("[+] "), format, elem...)
}
