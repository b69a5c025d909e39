package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Terminal styling for error output. fatih/color disables itself when
// stderr is not a terminal or NO_COLOR is set, so there is a single code
// path for colored and plain rendering.
var (
	errHeadline  = color.New(color.FgRed, color.Bold)
	errCategory  = color.New(color.FgYellow)
	errBody      = color.New(color.FgRed)
	usageHeading = color.New(color.FgCyan, color.Bold)
	usageBody    = color.New(color.FgCyan)
	fixHeading   = color.New(color.FgGreen, color.Bold)
	fixBullet    = color.New(color.FgGreen)
)

// FormatError renders a CLIError for the terminal: a category-labelled
// headline, an optional usage line for argument errors, then the
// remediation steps as a bullet list.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]: %s\n",
		errHeadline.Sprint("Error"),
		errCategory.Sprint(err.Category.String()),
		errBody.Sprint(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n",
			usageHeading.Sprint("Usage:"),
			usageBody.Sprint(err.Usage))
	}

	if len(err.Remediation) > 0 {
		fmt.Fprintf(&b, "\n%s\n", fixHeading.Sprint("To fix this:"))
		for _, step := range err.Remediation {
			fmt.Fprintf(&b, "  %s %s\n", fixBullet.Sprint("•"), step)
		}
	}

	return b.String()
}

// FprintError writes a formatted CLIError to the given writer.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

// PrintError writes a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// PrintSimpleError writes a plain error to stderr in the CLIError format,
// labelled with the given category. Used for errors that reach the top of
// the CLI without a category of their own.
func PrintSimpleError(err error, category ErrorCategory) {
	if err == nil {
		return
	}
	PrintError(&CLIError{Category: category, Message: err.Error()})
}
