package checks

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoHealthCheck verifies the service's liveness resource: it must answer
// with a 200 status and a JSON object whose data.status property is "ok".
// Anything else, including an unreachable service, fails the check.
func DoHealthCheck(t *T) {
	resp := t.Request("GET", "/health", nil)
	if resp.Status != 200 || resp.Body.Type() != ldvalue.ObjectType {
		t.Errorf("health check failed: %d %s", resp.Status, resp.Text)
		return
	}
	data := resp.Body.GetByKey("data")
	if status := data.GetByKey("status").StringValue(); status != "ok" {
		t.Errorf("health status is %q, expected %q", status, "ok")
		return
	}
	t.Pass("health check passed")
	if version := data.GetByKey("version").StringValue(); version != "" {
		t.Info("service reports version %s", version)
	}
}
