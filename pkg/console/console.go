// Package console formats user-facing terminal output and runs interactive prompts.
//
// Messages are written to stderr by callers:
//
//	fmt.Fprintln(os.Stderr, console.FormatInfoMessage("current file path: "+cwd))
//
// Styling is applied only when stderr is a terminal and NO_COLOR is unset, so the
// Format functions return plain text under tests and in pipes.
package console

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/up-web-vue/create-up-web-vue/pkg/tty"
)

var colorEnabled = tty.IsStderrTerminal() && os.Getenv("NO_COLOR") == ""

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10AC84"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2E86DE"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9F43"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EE5253"))
	boldRed      = errorStyle.Bold(true)
	verboseStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	bannerRule   = successStyle.Bold(true)
	bannerTitle  = successStyle.Bold(true)
)

const (
	bannerRuleText  = "-------------------------------------------------"
	bannerTitleText = "Up-web-vue cli, easier build a web project"
)

func applyStyle(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}

// FormatSuccessMessage formats a success message.
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats an unexpected error in bold red.
func FormatErrorMessage(message string) string {
	return applyStyle(boldRed, "Emm, Error occurs: "+message)
}

// FormatCancelMessage formats a cancellation notice with a leading marker such as "✖".
func FormatCancelMessage(marker string) string {
	return applyStyle(errorStyle, marker) + applyStyle(errorStyle, " Operation cancelled")
}

// FormatVerboseMessage formats a message shown only with --verbose.
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, "🔍 "+message)
}

// FormatBanner renders the start-up banner. With rich set the title is bold green,
// otherwise red, mirroring terminals that cannot show true color.
func FormatBanner(rich bool) string {
	title := applyStyle(errorStyle, bannerTitleText)
	if rich {
		title = applyStyle(bannerTitle, bannerTitleText)
	}
	rule := applyStyle(bannerRule, bannerRuleText)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// SupportsRichColor reports whether stdout is a terminal with more than 256 colors.
func SupportsRichColor() bool {
	return tty.IsStdoutTerminal() && colorDepth(os.Getenv("TERM"), os.Getenv("COLORTERM")) > 8
}

// colorDepth estimates the bits per pixel of the terminal: 1, 4, 8 or 24.
func colorDepth(term, colorTerm string) int {
	switch strings.ToLower(colorTerm) {
	case "truecolor", "24bit":
		return 24
	}
	switch {
	case term == "dumb":
		return 1
	case strings.Contains(term, "direct"), strings.Contains(term, "truecolor"):
		return 24
	case strings.Contains(term, "256"):
		return 8
	default:
		return 4
	}
}
