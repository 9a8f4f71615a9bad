package checks

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/packetparamedic/deployment-validator/client"
	"github.com/packetparamedic/deployment-validator/framework"
)

// scriptedAPI is a ServiceAPI returning canned responses by "METHOD path",
// recording every request it receives in order. Requests with no scripted
// response behave like an unreachable service.
type scriptedAPI struct {
	responses map[string]client.Response
	requests  []string
}

func newScriptedAPI() *scriptedAPI {
	return &scriptedAPI{responses: make(map[string]client.Response)}
}

func (s *scriptedAPI) on(method, path string, resp client.Response) *scriptedAPI {
	s.responses[method+" "+path] = resp
	return s
}

func (s *scriptedAPI) Request(method, path string, body interface{}) client.Response {
	key := method + " " + path
	s.requests = append(s.requests, key)
	if resp, ok := s.responses[key]; ok {
		return resp
	}
	return client.Response{Text: "connection refused"}
}

func jsonResponse(status int, body string) client.Response {
	return client.Response{Status: status, Body: ldvalue.Parse([]byte(body)), Text: body}
}

// scriptedRunner is a CommandRunner that returns a fixed outcome, recording
// the commands it was asked to run.
type scriptedRunner struct {
	output   string
	err      error
	commands []string
}

func (s *scriptedRunner) Run(command string) (string, error) {
	s.commands = append(s.commands, command)
	return s.output, s.err
}

func newTestEnv() (*Env, *scriptedAPI, *scriptedRunner) {
	api := newScriptedAPI()
	runner := &scriptedRunner{}
	return &Env{API: api, Remote: runner, RemoteBinary: "./packetparamedic"}, api, runner
}

// runCheck executes one check function in its own scope, returning whether it
// passed along with everything it logged.
func runCheck(env *Env, action func(*T)) (bool, *framework.CapturingCheckLogger) {
	logger := framework.NewCapturingCheckLogger()
	results := framework.Run(nil, logger, func(c *framework.Context) {
		t := &T{context: c, env: env}
		t.Run("check", action)
	})
	return results.OK(), logger
}
