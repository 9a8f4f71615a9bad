package framework

// MultiCheckLogger delegates check logging to any number of other loggers,
// such as the console logger plus a JUnit file writer.
type MultiCheckLogger struct {
	Loggers []CheckLogger
}

func (m MultiCheckLogger) CheckStarted(id CheckID) {
	for _, l := range m.Loggers {
		l.CheckStarted(id)
	}
}

func (m MultiCheckLogger) CheckObservation(id CheckID, status Status, message string) {
	for _, l := range m.Loggers {
		l.CheckObservation(id, status, message)
	}
}

func (m MultiCheckLogger) CheckError(id CheckID, err error) {
	for _, l := range m.Loggers {
		l.CheckError(id, err)
	}
}

func (m MultiCheckLogger) CheckFinished(id CheckID, failed bool, debugOutput CapturedOutput) {
	for _, l := range m.Loggers {
		l.CheckFinished(id, failed, debugOutput)
	}
}

func (m MultiCheckLogger) CheckSkipped(id CheckID, reason string) {
	for _, l := range m.Loggers {
		l.CheckSkipped(id, reason)
	}
}

// EndLog calls EndLog on every delegate, returning the first error but not
// stopping for it: a failed report write must not keep another logger from
// finishing.
func (m MultiCheckLogger) EndLog(results Results) error {
	var firstErr error
	for _, l := range m.Loggers {
		if err := l.EndLog(results); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
