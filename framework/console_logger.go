package framework

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var consolePassColor = color.New(color.FgGreen)             //nolint:gochecknoglobals
var consoleFailColor = color.New(color.FgRed)               //nolint:gochecknoglobals
var consoleSkipColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)        //nolint:gochecknoglobals
var consoleAllPassedColor = color.New(color.FgGreen)        //nolint:gochecknoglobals

// ConsoleCheckLogger renders check progress as labeled lines on standard
// output: a [name] header per check, then one indented line per observation
// or error.
type ConsoleCheckLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleCheckLogger) CheckStarted(id CheckID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleCheckLogger) CheckObservation(id CheckID, status Status, message string) {
	switch status {
	case StatusPass:
		_, _ = consolePassColor.Printf("  [%s] %s\n", status, message)
	case StatusFail:
		_, _ = consoleFailColor.Printf("  [%s] %s\n", status, message)
	default:
		fmt.Printf("  [%s] %s\n", status, message)
	}
}

func (c *ConsoleCheckLogger) CheckError(id CheckID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = consoleFailColor.Printf("  [%s] %s\n", StatusFail, line)
	}
}

func (c *ConsoleCheckLogger) CheckFinished(id CheckID, failed bool, debugOutput CapturedOutput) {
	if failed {
		_, _ = consoleFailColor.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		_, _ = consoleDebugOutputColor.Print(debugOutput.ToString("    DEBUG "))
	}
}

func (c *ConsoleCheckLogger) CheckSkipped(id CheckID, reason string) {
	if reason == "" {
		_, _ = consoleSkipColor.Printf("  SKIPPED: %s\n", id)
	} else {
		_, _ = consoleSkipColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func (c *ConsoleCheckLogger) EndLog(results Results) error {
	PrintResults(results)
	return nil
}

// PrintResults prints the suite totals and the overall verdict. Failures go
// to standard error so they stay visible when standard output is captured.
func PrintResults(results Results) {
	fmt.Printf("Checks: %d total, %d passed, %d failed\n",
		results.Total(), results.Passed(), results.Failed())
	if results.OK() {
		_, _ = consoleAllPassedColor.Println("ALL CHECKS PASSED")
		return
	}
	_, _ = consoleFailColor.Fprintf(os.Stderr, "FAILED CHECKS (%d):\n", len(results.Failures))
	for _, f := range results.Failures {
		_, _ = consoleFailColor.Fprintf(os.Stderr, "  * %s\n", f.CheckID)
	}
}
