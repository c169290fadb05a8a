package output

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner shows activity while a long step runs. It is a no-op when the
// writer is not a terminal, so piped and container logs stay clean.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner returns a spinner with the given suffix writing to w.
func NewSpinner(w io.Writer, suffix string) *Spinner {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + suffix
	return &Spinner{s: s}
}

// Start begins animating.
func (s *Spinner) Start() {
	if s.s != nil {
		s.s.Start()
	}
}

// Stop clears the spinner line.
func (s *Spinner) Stop() {
	if s.s != nil {
		s.s.Stop()
	}
}
