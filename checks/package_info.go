// Package checks contains the deployment checks themselves.
//
// Each check is an independent probe against a freshly deployed instance of
// the service. A check observes the deployment only through the environment
// it is given (the HTTP API client and the remote command runner) and
// reports what it finds through its T scope, so the same checks run
// unchanged against a real appliance or an in-process fake.
//
// The machinery that is not specific to this service, such as running checks
// in order and turning their outcomes into an exit code, is in the
// lower-level framework package.
package checks
