package framework

// Status labels a single observation line reported by a check.
type Status string

const (
	// StatusPass marks an observation that a required condition held.
	StatusPass Status = "PASS"
	// StatusFail marks an observation that a condition did not hold. Note
	// that a FAIL observation by itself does not decide the check's verdict;
	// see Context.Failure.
	StatusFail Status = "FAIL"
	// StatusInfo marks a neutral observation.
	StatusInfo Status = "INFO"
)

// CheckLogger receives status information about each check as the suite
// runs. Implementations decide how to render it: the console logger prints
// colored lines as events happen, the JUnit logger accumulates everything
// and writes a report at the end.
type CheckLogger interface {
	CheckStarted(id CheckID)
	CheckObservation(id CheckID, status Status, message string)
	CheckError(id CheckID, err error)
	CheckFinished(id CheckID, failed bool, debugOutput CapturedOutput)
	CheckSkipped(id CheckID, reason string)
	EndLog(results Results) error
}

type nullCheckLogger struct{}

func (n nullCheckLogger) CheckStarted(CheckID)                        {}
func (n nullCheckLogger) CheckObservation(CheckID, Status, string)    {}
func (n nullCheckLogger) CheckError(CheckID, error)                   {}
func (n nullCheckLogger) CheckFinished(CheckID, bool, CapturedOutput) {}
func (n nullCheckLogger) CheckSkipped(CheckID, string)                {}
func (n nullCheckLogger) EndLog(Results) error                        { return nil }

// CapturedObservation is one status line recorded by a CapturingCheckLogger.
type CapturedObservation struct {
	CheckID CheckID
	Status  Status
	Message string
}

// CapturingCheckLogger is a CheckLogger that records events in memory instead
// of rendering them, so tests of the harness itself can assert on exactly
// what was reported.
type CapturingCheckLogger struct {
	started      []CheckID
	observations []CapturedObservation
	failures     map[string][]string
	finished     map[string]bool
	debug        map[string]CapturedOutput
	skipped      map[string]string
}

func NewCapturingCheckLogger() *CapturingCheckLogger {
	return &CapturingCheckLogger{
		failures: make(map[string][]string),
		finished: make(map[string]bool),
		debug:    make(map[string]CapturedOutput),
		skipped:  make(map[string]string),
	}
}

func (l *CapturingCheckLogger) CheckStarted(id CheckID) {
	l.started = append(l.started, id)
}

func (l *CapturingCheckLogger) CheckObservation(id CheckID, status Status, message string) {
	l.observations = append(l.observations, CapturedObservation{CheckID: id, Status: status, Message: message})
}

func (l *CapturingCheckLogger) CheckError(id CheckID, err error) {
	l.failures[id.String()] = append(l.failures[id.String()], err.Error())
}

func (l *CapturingCheckLogger) CheckFinished(id CheckID, failed bool, debugOutput CapturedOutput) {
	l.finished[id.String()] = failed
	l.debug[id.String()] = debugOutput
}

func (l *CapturingCheckLogger) CheckSkipped(id CheckID, reason string) {
	l.skipped[id.String()] = reason
}

func (l *CapturingCheckLogger) EndLog(Results) error { return nil }

// Started returns the ID of every check that was started, in order.
func (l *CapturingCheckLogger) Started() []CheckID { return l.started }

// Observations returns every recorded status line, in order.
func (l *CapturingCheckLogger) Observations() []CapturedObservation { return l.observations }

// StatusMessages returns the messages of every recorded observation with the
// given status.
func (l *CapturingCheckLogger) StatusMessages(status Status) []string {
	var ret []string
	for _, o := range l.observations {
		if o.Status == status {
			ret = append(ret, o.Message)
		}
	}
	return ret
}

// FailureMessages returns the failure messages recorded for the named check.
func (l *CapturingCheckLogger) FailureMessages(id string) []string {
	return l.failures[id]
}

// Finished reports whether the named check finished, and if so whether it
// failed.
func (l *CapturingCheckLogger) Finished(id string) (failed, ok bool) {
	failed, ok = l.finished[id]
	return
}

// DebugOutput returns the debug transcript delivered when the named check
// finished.
func (l *CapturingCheckLogger) DebugOutput(id string) CapturedOutput {
	return l.debug[id]
}

// Skipped returns the skip reasons recorded so far, by check name.
func (l *CapturingCheckLogger) Skipped() map[string]string { return l.skipped }
