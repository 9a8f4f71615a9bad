package checks

import (
	"github.com/packetparamedic/deployment-validator/client"
	"github.com/packetparamedic/deployment-validator/framework"
)

// ServiceAPI is the HTTP surface the checks consume. *client.ServiceClient
// implements it; tests substitute in-memory implementations.
type ServiceAPI interface {
	Request(method, path string, body interface{}) client.Response
}

// CommandRunner executes a shell command on the deployment host and returns
// its combined output. *remote.SSHRunner implements it.
type CommandRunner interface {
	Run(command string) (string, error)
}

// Env holds the handles a check uses to reach the deployment under
// validation.
type Env struct {
	API          ServiceAPI
	Remote       CommandRunner
	RemoteBinary string
}

// T represents one running check.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, and with observation
// methods (Pass, Info, Failure) for reporting what was verified. Those
// features are provided by our lower-level framework package.
//
// It also provides the functionality that is specific to validating this
// service: issuing API requests with normalized outcomes, and running
// commands on the deployment host.
type T struct {
	context *framework.Context
	env     *Env
}

// Run runs a named check in its own scope. A failure, or even a crash, in
// the action is recorded against that check's name; control always returns
// normally so that subsequent checks run.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Errorf is called by assertions to log a check failure. It does not cause
// an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a check should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Pass logs a PASS-status line for this check.
func (t *T) Pass(format string, args ...interface{}) {
	t.context.Pass(format, args...)
}

// Info logs an INFO-status line for this check.
func (t *T) Info(format string, args ...interface{}) {
	t.context.Info(format, args...)
}

// Failure logs a FAIL-status line without failing the check; see
// framework.Context.Failure.
func (t *T) Failure(format string, args ...interface{}) {
	t.context.Failure(format, args...)
}

// Debug logs some debug output for the check. The output will be passed to
// the check logger at the end of the check.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Request issues one API request and logs it to the check's debug
// transcript. A transport-level failure (no HTTP response at all) is logged
// here as a FAIL-status line, exactly once, so individual checks only need
// to look at the status code afterwards.
func (t *T) Request(method, path string, body interface{}) client.Response {
	t.Debug("%s %s", method, path)
	resp := t.env.API.Request(method, path, body)
	if resp.TransportFailed() {
		t.Failure("request failed: %s", resp.Text)
	} else {
		t.Debug("-> %d %s", resp.Status, resp.Text)
	}
	return resp
}

// requireReachable asserts that a GET of the given path answers with a 200
// status, failing the check immediately otherwise.
func (t *T) requireReachable(path string) {
	resp := t.Request("GET", path, nil)
	if resp.Status != 200 {
		t.Errorf("GET %s returned %d %s", path, resp.Status, resp.Text)
		t.FailNow()
	}
	t.Pass("GET %s reachable", path)
}
