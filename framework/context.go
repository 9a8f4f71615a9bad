package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results     Results
	checkLogger CheckLogger
	filter      Filter
}

// Context is the scope of one running check. Check functions use it the way
// ordinary Go tests use *testing.T, plus observation methods (Pass, Info,
// Failure) for reporting what was verified.
type Context struct {
	env         *environment
	id          CheckID
	debugLogger CapturingLogger
	failed      bool
	errors      []error
}

// Run executes a suite of checks and returns their aggregate results. The
// action normally consists of a series of Context.Run calls, one per check,
// in the order the checks should execute. The root scope only sequences the
// checks; it is not itself counted in the results.
func Run(
	filter Filter,
	checkLogger CheckLogger,
	action func(*Context),
) Results {
	if checkLogger == nil {
		checkLogger = nullCheckLogger{}
	}
	env := &environment{
		filter:      filter,
		checkLogger: checkLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.checkLogger.CheckError(c.id, addError)
			}
		}
		if len(c.id) == 0 {
			return
		}
		result := CheckResult{CheckID: c.id, Errors: c.errors}
		c.env.results.Checks = append(c.env.results.Checks, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// Run executes a single named check within this scope. The check runs inside
// an isolating boundary: a failure, or even a panic, in the action is
// recorded against this check's name and control returns normally so that
// later checks still run.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.checkLogger.CheckStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.checkLogger.CheckSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	c.env.checkLogger.CheckFinished(id, c1.failed, c1.debugLogger.Output())
}

// Pass reports a successful observation for this check.
func (c *Context) Pass(format string, args ...interface{}) {
	c.observe(StatusPass, format, args...)
}

// Info reports a neutral observation for this check.
func (c *Context) Info(format string, args ...interface{}) {
	c.observe(StatusInfo, format, args...)
}

// Failure reports a failed observation without marking the check as failed.
// It is used for advisory steps whose failures should be visible in the
// output but must not change the check's verdict, and for transport-level
// failure lines that precede a normal Errorf.
func (c *Context) Failure(format string, args ...interface{}) {
	c.observe(StatusFail, format, args...)
}

func (c *Context) observe(status Status, format string, args ...interface{}) {
	c.env.checkLogger.CheckObservation(c.id, status, fmt.Sprintf(format, args...))
}

// Errorf reports a check failure. Like testing.T.Errorf, it marks the check
// as failed without terminating it.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.checkLogger.CheckError(c.id, err)
}

// FailNow marks the check as failed and terminates it immediately.
func (c *Context) FailNow() {
	panic(c)
}

// Debug writes a line to the check's captured transcript. The transcript is
// delivered to the check logger when the check finishes; whether it is shown
// is up to the logger's options.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}
