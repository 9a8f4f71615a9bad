package checks

import (
	"github.com/packetparamedic/deployment-validator/framework"
)

// RunSuite executes every deployment check against the given environment and
// returns the aggregate results. The checks always run sequentially, in this
// fixed order; the schedule lifecycle check mutates service state, so it
// runs after the read-only checks.
func RunSuite(
	env *Env,
	filter framework.Filter,
	checkLogger framework.CheckLogger,
) framework.Results {
	return framework.Run(filter, checkLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env:     env,
		}

		t.Run("health", DoHealthCheck)
		t.Run("network interfaces", DoNetworkInterfacesCheck)
		t.Run("self-test", DoSelfTestCheck)
		t.Run("incidents", DoIncidentsCheck)
		t.Run("probe status", DoProbeStatusCheck)
		t.Run("speed test results", DoSpeedTestResultsCheck)
		t.Run("schedule lifecycle", DoScheduleLifecycleCheck)
		t.Run("remote CLI", DoRemoteCLICheck)
	})
}
