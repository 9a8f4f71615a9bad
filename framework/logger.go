package framework

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is a minimal output interface for debug messages.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped line of debug output from a check.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is an ordered transcript of debug output from a check.
type CapturedOutput []CapturedMessage

// CapturingLogger accumulates output in memory so that it can be shown, or
// not, after the check that produced it has finished.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

// Output returns a copy of everything logged so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// ToString renders the transcript one line per message, each line starting
// with the given prefix.
func (output CapturedOutput) ToString(prefix string) string {
	var sb strings.Builder
	for _, m := range output {
		fmt.Fprintf(&sb, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
	return sb.String()
}
