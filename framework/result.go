package framework

import (
	"strings"
)

// Results is the aggregate outcome of a suite run. Only checks that actually
// executed are counted; checks excluded by a filter appear nowhere here.
type Results struct {
	Checks   []CheckResult
	Failures []CheckResult
}

// CheckResult is the recorded outcome of a single check.
type CheckResult struct {
	CheckID CheckID
	Errors  []error
}

// OK returns true if no checks failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Total returns the number of checks that executed.
func (r Results) Total() int {
	return len(r.Checks)
}

// Passed returns the number of checks that executed and did not fail.
func (r Results) Passed() int {
	return len(r.Checks) - len(r.Failures)
}

// Failed returns the number of checks that failed.
func (r Results) Failed() int {
	return len(r.Failures)
}

// CheckID identifies a check by its name path. The checks in this harness
// form a flat list, so the path normally has a single element.
type CheckID []string

func (c CheckID) String() string {
	return strings.Join(c, "/")
}

// Plus returns an extended CheckID with one more path element added.
func (c CheckID) Plus(name string) CheckID {
	return append(append(CheckID(nil), c...), name)
}
