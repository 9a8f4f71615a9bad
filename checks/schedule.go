package checks

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// The lifecycle check always creates the same schedule, under a name no real
// deployment would use, and points it at the mock test type so that leaving
// it behind can never trigger a real measurement.
const (
	lifecycleScheduleName = "integration_test_sched"
	lifecycleScheduleCron = "0 0 * * *"
	lifecycleScheduleTest = "speed-test-mock"
)

// Schedule is the request body for creating a schedule resource.
type Schedule struct {
	Name string `json:"name"`
	Cron string `json:"cron"`
	Test string `json:"test"`
}

// DoScheduleLifecycleCheck exercises the schedule resource end to end:
// create, find in the listing, dry-run the planner, delete. The first three
// steps gate each other, so a created schedule is only deleted if it was
// seen in the listing first; a listing failure leaves it behind. The dry-run
// step is advisory: its failure is reported but does not fail the check and
// does not prevent the delete.
func DoScheduleLifecycleCheck(t *T) {
	resp := t.Request("POST", "/schedules", Schedule{
		Name: lifecycleScheduleName,
		Cron: lifecycleScheduleCron,
		Test: lifecycleScheduleTest,
	})
	if resp.Status != 201 {
		t.Errorf("failed to create schedule: %d %s", resp.Status, resp.Text)
		return
	}
	t.Pass("schedule created")

	resp = t.Request("GET", "/schedules", nil)
	if !scheduleListed(resp.Body, lifecycleScheduleName) {
		t.Errorf("created schedule not found in list")
		return
	}
	t.Pass("schedule found in list")

	resp = t.Request("GET", "/schedules/dry-run?hours=24", nil)
	if resp.Status == 200 {
		t.Pass("dry run endpoint working")
	} else {
		t.Failure("dry run returned %d %s", resp.Status, resp.Text)
	}

	resp = t.Request("DELETE", "/schedules/"+lifecycleScheduleName, nil)
	if resp.Status != 200 {
		t.Errorf("failed to delete schedule: %d %s", resp.Status, resp.Text)
		return
	}
	t.Pass("schedule deleted")
}

// scheduleListed returns true if the listing body has a schedule with the
// given name in its data array. Malformed bodies are simply "not listed":
// GetByKey and GetByIndex return null values rather than failing.
func scheduleListed(body ldvalue.Value, name string) bool {
	list := body.GetByKey("data")
	for i := 0; i < list.Count(); i++ {
		if list.GetByIndex(i).GetByKey("name").StringValue() == name {
			return true
		}
	}
	return false
}
