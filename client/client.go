// Package client provides the HTTP transport the checks use to exercise the
// service's API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const waitPollInterval = time.Millisecond * 500

// Response is the normalized outcome of a single API request.
//
// Status is the HTTP status code, or 0 if no HTTP response was received at
// all (connection refused, DNS failure, broken connection). Callers use the
// zero value to tell "service answered with an error" apart from "service
// unreachable". Body is a best-effort JSON parse of the response body; it is
// a null value when the body is not valid JSON. Text carries the raw body
// text, or, when Status is 0, a description of the transport failure.
type Response struct {
	Status int
	Body   ldvalue.Value
	Text   string
}

// TransportFailed returns true if the request produced no HTTP response.
func (r Response) TransportFailed() bool {
	return r.Status == 0
}

// ServiceClient issues requests against the service's API base URL (the
// prefix under which all of the API routes live, including the version
// segment). Keep-alives are disabled so that every request exercises a fresh
// connection to the deployment; the client holds no other state between
// calls.
type ServiceClient struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a ServiceClient for the given base URL.
func New(baseURL string) *ServiceClient {
	return &ServiceClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{DisableKeepAlives: true},
		},
	}
}

// Request issues one HTTP request and normalizes the outcome into a
// Response. A non-nil body is serialized as JSON and sent with a JSON
// content type. Request never returns an error; every failure mode is folded
// into the Response as described on that type.
func (c *ServiceClient) Request(method, path string, body interface{}) Response {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Response{Text: fmt.Sprintf("cannot serialize request body: %s", err)}
		}
		reqBody = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return Response{Text: err.Error()}
	}
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{Text: err.Error()}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{Status: resp.StatusCode, Text: fmt.Sprintf("error reading response body: %s", err)}
	}
	return Response{Status: resp.StatusCode, Body: ldvalue.Parse(data), Text: string(data)}
}

// WaitForHealthy polls the service's health resource until it answers with a
// 200 status or the timeout passes, writing one progress dot per attempt. A
// zero timeout means a single probe.
func (c *ServiceClient) WaitForHealthy(timeout time.Duration, output io.Writer) error {
	fmt.Fprintf(output, "Waiting for service at %s", c.baseURL)
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprint(output, ".")
		resp := c.Request("GET", "/health", nil)
		if resp.Status == 200 {
			fmt.Fprintln(output)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			if resp.TransportFailed() {
				return fmt.Errorf("gave up waiting for service: %s", resp.Text)
			}
			return fmt.Errorf("gave up waiting for service: last status was %d", resp.Status)
		}
		time.Sleep(waitPollInterval)
	}
}
