// Package logger provides namespaced debug logging modelled on the debug npm package.
//
// Loggers are created once per file with a "component:area" namespace:
//
//	var createLog = logger.New("cli:create")
//
//	createLog.Printf("target directory: %s", dir)
//
// Output is disabled unless the DEBUG environment variable matches the namespace.
// DEBUG accepts a comma-separated list of patterns where "*" is a wildcard and a
// leading "-" excludes matching namespaces:
//
//	DEBUG=*                   all namespaces
//	DEBUG=cli:*               every namespace starting with "cli:"
//	DEBUG=*,-parser:*         everything except the parser
//
// Each line is written to stderr and suffixed with the time elapsed since the
// previous line of the same logger.
package logger

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/up-web-vue/create-up-web-vue/pkg/tty"
)

var (
	debugEnv = os.Getenv("DEBUG")

	output  io.Writer = os.Stderr
	outMu   sync.Mutex
	colored = tty.IsStderrTerminal() && os.Getenv("NO_COLOR") == ""
)

var palette = []lipgloss.Color{"#2E86DE", "#10AC84", "#EE5253", "#FF9F43", "#8E44AD", "#0ABDE3"}

// Logger writes debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	style     lipgloss.Style

	mu      sync.Mutex
	lastLog time.Time
}

// New creates a logger for namespace. Whether it prints is decided once from DEBUG.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace, debugEnv),
		style:     lipgloss.NewStyle().Bold(true).Foreground(pickColor(namespace)),
	}
}

// Enabled reports whether the logger prints anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats and writes a debug line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print writes a debug line built like fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(msg string) {
	l.mu.Lock()
	now := time.Now()
	var elapsed time.Duration
	if !l.lastLog.IsZero() {
		elapsed = now.Sub(l.lastLog)
	}
	l.lastLog = now
	l.mu.Unlock()

	ns := l.namespace
	if colored {
		ns = l.style.Render(ns)
	}

	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(output, "%s %s +%s\n", ns, msg, formatElapsed(elapsed))
}

func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d >= time.Second:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

func pickColor(namespace string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(namespace))
	return palette[h.Sum32()%uint32(len(palette))]
}

// computeEnabled matches namespace against a DEBUG value. Exclusions win over inclusions.
func computeEnabled(namespace, debug string) bool {
	if debug == "" {
		return false
	}

	enabled := false
	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.HasPrefix(pattern, "-") {
			if matchPattern(namespace, pattern[1:]) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern supports "*" anywhere in the pattern.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return namespace == pattern
	}

	parts := strings.Split(pattern, "*")
	if !strings.HasPrefix(namespace, parts[0]) {
		return false
	}
	rest := namespace[len(parts[0]):]
	for i, part := range parts[1:] {
		if i == len(parts)-2 {
			return strings.HasSuffix(rest, part)
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return true
}
