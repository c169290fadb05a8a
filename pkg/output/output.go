// Package output prints the launcher's tagged status lines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/mumega/launchpad/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

// Tags prefixed to every status line.
const (
	TagInfo  = "[INFO]"
	TagWarn  = "[WARN]"
	TagError = "[ERROR]"
)

// Printer writes tagged status lines to W.
type Printer struct {
	W io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{W: w}
}

// Info prints an [INFO] line.
func (p *Printer) Info(format string, args ...interface{}) {
	p.line(green, TagInfo, fmt.Sprintf(format, args...))
}

// Warn prints a [WARN] line.
func (p *Printer) Warn(format string, args ...interface{}) {
	p.line(yellow, TagWarn, fmt.Sprintf(format, args...))
}

// Error prints an [ERROR] line.
func (p *Printer) Error(format string, args ...interface{}) {
	p.line(red, TagError, fmt.Sprintf(format, args...))
}

// PrintResult outputs a step result under the tag matching its status.
// Failures and warnings carry their message on the tagged line; passing
// steps show their name. Skipped results print nothing.
func (p *Printer) PrintResult(r check.Result) {
	var color, tag string
	switch r.Status {
	case check.StatusOK:
		color, tag = green, TagInfo
	case check.StatusWarn:
		color, tag = yellow, TagWarn
	case check.StatusFail:
		color, tag = red, TagError
	default:
		return
	}

	headline, details := r.Name, r.Details
	if r.Message != "" && r.Status != check.StatusOK {
		headline, details = r.Message, without(r.Details, r.Message)
	}

	p.line(color, tag, headline)
	indent := strings.Repeat(" ", len(tag)+1)
	for _, d := range details {
		_, _ = fmt.Fprintf(p.W, "%s%s\n", indent, formatLabel(d))
	}
}

// without returns details minus the first occurrence of msg.
func without(details []string, msg string) []string {
	for i, d := range details {
		if d == msg {
			return append(details[:i:i], details[i+1:]...)
		}
	}
	return details
}

// Banner prints the service summary shown right before handoff.
type Banner struct {
	Name     string
	Admin    string
	Docs     string
	UI       string
	Database string
}

// PrintBanner prints b as [INFO] lines.
func (p *Printer) PrintBanner(b Banner) {
	p.Info("Starting %s...", b.Name)
	p.Info("Admin Interface: %s", b.Admin)
	p.Info("API Documentation: %s", b.Docs)
	p.Info("User Interface: %s", b.UI)
	p.Info("Database: %s", b.Database)
}

func (p *Printer) line(color, tag, msg string) {
	_, _ = fmt.Fprintf(p.W, "%s%s%s %s\n", color, tag, reset, msg)
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, value, found := strings.Cut(s, ": ")
	if !found || strings.Contains(label, " ") {
		return s
	}
	return dim + label + ":" + reset + " " + value
}
