package checks

// The checks below validate read-only resources for reachability only: a
// healthy deployment answers them with a 200 status, whatever diagnostic
// data it happens to hold.

// DoNetworkInterfacesCheck verifies the interface listing resource answers.
func DoNetworkInterfacesCheck(t *T) {
	t.requireReachable("/network/interfaces")
}

// DoIncidentsCheck verifies the incident listing resource answers.
func DoIncidentsCheck(t *T) {
	t.requireReachable("/incidents")
}

// DoProbeStatusCheck verifies the probe status resource answers.
func DoProbeStatusCheck(t *T) {
	t.requireReachable("/probes/status")
}

// DoSpeedTestResultsCheck verifies the stored speed test resources answer.
// It only reads stored results; it never starts a measurement.
func DoSpeedTestResultsCheck(t *T) {
	t.requireReachable("/speed-test/latest")
	t.requireReachable("/speed-test/history")
}
