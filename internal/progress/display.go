package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Indicator shows a spinner while a blocking external tool runs.
// It is nil-safe: a nil Indicator makes every method a no-op, so callers
// don't have to branch on whether progress display is enabled.
type Indicator struct {
	spin    *spinner.Spinner
	symbols ProgressSymbols
	out     io.Writer
}

// NewIndicator creates an Indicator for the detected terminal, or nil when
// stdout is not a terminal (piped output stays clean).
func NewIndicator(out io.Writer) *Indicator {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond,
		spinner.WithWriter(out))

	return &Indicator{spin: s, symbols: symbols, out: out}
}

// Start begins spinning with the given message.
func (i *Indicator) Start(message string) {
	if i == nil {
		return
	}
	i.spin.Suffix = " " + message
	i.spin.Start()
}

// Stop halts the spinner without printing a status mark.
func (i *Indicator) Stop() {
	if i == nil {
		return
	}
	i.spin.Stop()
}

// StopSuccess halts the spinner and prints a success mark with the message.
func (i *Indicator) StopSuccess(message string) {
	if i == nil {
		return
	}
	i.spin.FinalMSG = i.symbols.Checkmark + " " + message + "\n"
	i.spin.Stop()
	i.spin.FinalMSG = ""
}

// StopFailure halts the spinner and prints a failure mark with the message.
func (i *Indicator) StopFailure(message string) {
	if i == nil {
		return
	}
	i.spin.FinalMSG = i.symbols.Failure + " " + message + "\n"
	i.spin.Stop()
	i.spin.FinalMSG = ""
}
