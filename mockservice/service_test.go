package mockservice

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packetparamedic/deployment-validator/framework"
)

func doRequest(t *testing.T, server *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()
	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reqBody)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHealthResource(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		status, data := doRequest(t, server, "GET", "/health", "")
		require.Equal(t, 200, status)
		m.In(t).Assert(data, m.JSONStrEqual(
			`{"data":{"status":"ok","version":"1.2.3"},"meta":{"version":"1.2.3"}}`))

		service.SetHealthStatus("degraded")
		status, data = doRequest(t, server, "GET", "/health", "")
		require.Equal(t, 200, status)
		assert.Equal(t, "degraded",
			ldvalue.Parse(data).GetByKey("data").GetByKey("status").StringValue())
	})
}

func TestReadOnlyResourcesAnswerWithEnvelope(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		for _, path := range []string{
			"/network/interfaces",
			"/incidents",
			"/probes/status",
			"/speed-test/latest",
			"/speed-test/history",
		} {
			t.Run(path, func(t *testing.T) {
				status, data := doRequest(t, server, "GET", path, "")
				assert.Equal(t, 200, status)
				assert.Equal(t, ldvalue.ObjectType, ldvalue.Parse(data).Type())
			})
		}
	})
}

func TestSelfTestResource(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		status, data := doRequest(t, server, "GET", "/self-test/latest", "")
		require.Equal(t, 200, status)
		assert.True(t, ldvalue.Parse(data).GetByKey("data").IsNull())

		service.SetSelfTestResult(map[string]interface{}{"overall": "pass"})
		status, data = doRequest(t, server, "GET", "/self-test/latest", "")
		require.Equal(t, 200, status)
		assert.Equal(t, "pass",
			ldvalue.Parse(data).GetByKey("data").GetByKey("overall").StringValue())
	})
}

func TestScheduleLifecycle(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		status, _ := doRequest(t, server, "POST", "/schedules",
			`{"name":"sched1","cron":"0 0 * * *","test":"speed-test-mock"}`)
		require.Equal(t, 201, status)
		assert.Equal(t, []string{"sched1"}, service.ScheduleNames())

		status, data := doRequest(t, server, "GET", "/schedules", "")
		require.Equal(t, 200, status)
		list := ldvalue.Parse(data).GetByKey("data")
		require.Equal(t, 1, list.Count())
		assert.Equal(t, "sched1", list.GetByIndex(0).GetByKey("name").StringValue())
		assert.True(t, list.GetByIndex(0).GetByKey("enabled").BoolValue())

		status, data = doRequest(t, server, "POST", "/schedules",
			`{"name":"sched1","cron":"0 0 * * *","test":"speed-test-mock"}`)
		assert.Equal(t, 400, status)
		assert.Contains(t, ldvalue.Parse(data).GetByKey("error").StringValue(), "already exists")

		status, _ = doRequest(t, server, "DELETE", "/schedules/sched1", "")
		require.Equal(t, 200, status)
		assert.Empty(t, service.ScheduleNames())

		status, data = doRequest(t, server, "DELETE", "/schedules/sched1", "")
		assert.Equal(t, 404, status)
		assert.Equal(t, "schedule not found", ldvalue.Parse(data).GetByKey("error").StringValue())
	})
}

func TestScheduleCreateRejectsMalformedBody(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		for _, body := range []string{"not json", "{}", `{"name":"x"}`} {
			status, _ := doRequest(t, server, "POST", "/schedules", body)
			assert.Equal(t, 400, status, "body: %s", body)
		}
		assert.Empty(t, service.ScheduleNames())
	})
}

func TestScheduleDryRun(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		status, data := doRequest(t, server, "GET", "/schedules/dry-run?hours=24", "")
		require.Equal(t, 200, status)
		assert.Equal(t, 24, ldvalue.Parse(data).GetByKey("data").GetByKey("window_hours").IntValue())

		for _, path := range []string{
			"/schedules/dry-run",
			"/schedules/dry-run?hours=abc",
			"/schedules/dry-run?hours=0",
		} {
			status, _ := doRequest(t, server, "GET", path, "")
			assert.Equal(t, 400, status, "path: %s", path)
		}
	})
}

func TestUnknownRoutesAndMethods(t *testing.T) {
	service := New("1.2.3", framework.NullLogger())
	httphelpers.WithServer(service, func(server *httptest.Server) {
		status, _ := doRequest(t, server, "GET", "/no-such-resource", "")
		assert.Equal(t, 404, status)

		status, _ = doRequest(t, server, "POST", "/health", `{}`)
		assert.Equal(t, 405, status)
	})
}
