package checks

import (
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetparamedic/deployment-validator/client"
	"github.com/packetparamedic/deployment-validator/framework"
	"github.com/packetparamedic/deployment-validator/mockservice"
)

var checkNamesInOrder = []string{
	"health",
	"network interfaces",
	"self-test",
	"incidents",
	"probe status",
	"speed test results",
	"schedule lifecycle",
	"remote CLI",
}

func newSuiteEnv(server *httptest.Server) *Env {
	return &Env{
		API:          client.New(server.URL),
		Remote:       &scriptedRunner{output: "packetparamedic 0.9.2\n"},
		RemoteBinary: "./packetparamedic",
	}
}

func TestSuitePassesAgainstHealthyService(t *testing.T) {
	service := mockservice.New("0.9.2", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		logger := framework.NewCapturingCheckLogger()

		results := RunSuite(newSuiteEnv(server), nil, logger)

		assert.True(t, results.OK())
		assert.Equal(t, len(checkNamesInOrder), results.Total())
		assert.Equal(t, len(checkNamesInOrder), results.Passed())
		assert.Empty(t, service.ScheduleNames(), "the lifecycle check must clean up its schedule")
	})
}

func TestSuiteRunsChecksInFixedOrder(t *testing.T) {
	service := mockservice.New("0.9.2", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		logger := framework.NewCapturingCheckLogger()

		_ = RunSuite(newSuiteEnv(server), nil, logger)

		var names []string
		for _, id := range logger.Started() {
			names = append(names, id.String())
		}
		assert.Equal(t, checkNamesInOrder, names)
	})
}

func TestSuiteReportsFailedCheckInResults(t *testing.T) {
	service := mockservice.New("0.9.2", framework.NullLogger())
	service.SetHealthStatus("degraded")
	httphelpers.WithServer(service, func(server *httptest.Server) {
		results := RunSuite(newSuiteEnv(server), nil, framework.NewCapturingCheckLogger())

		assert.False(t, results.OK())
		assert.Equal(t, len(checkNamesInOrder), results.Total())
		assert.Equal(t, 1, results.Failed())
		require.Len(t, results.Failures, 1)
		assert.Equal(t, "health", results.Failures[0].CheckID.String())
	})
}

func TestSuiteHonorsFilter(t *testing.T) {
	service := mockservice.New("0.9.2", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		logger := framework.NewCapturingCheckLogger()
		onlyHealth := func(id framework.CheckID) bool { return id.String() == "health" }

		results := RunSuite(newSuiteEnv(server), onlyHealth, logger)

		assert.True(t, results.OK())
		assert.Equal(t, 1, results.Total())
		assert.Len(t, logger.Skipped(), len(checkNamesInOrder)-1)
	})
}

func TestSuiteKeepsGoingWhenServiceIsUnreachable(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	env := &Env{
		API:          client.New(url),
		Remote:       &scriptedRunner{output: "packetparamedic 0.9.2\n"},
		RemoteBinary: "./packetparamedic",
	}
	results := RunSuite(env, nil, framework.NewCapturingCheckLogger())

	// every API check fails with the transport sentinel, but the suite still
	// visits all of them, and the remote CLI check is unaffected
	assert.False(t, results.OK())
	assert.Equal(t, len(checkNamesInOrder), results.Total())
	assert.Equal(t, len(checkNamesInOrder)-1, results.Failed())
	assert.Equal(t, 1, results.Passed())
}
