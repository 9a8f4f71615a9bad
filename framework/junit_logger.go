package framework

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// JUnitCheckLogger accumulates check results and writes them as a JUnit XML
// report when the suite ends, for consumption by CI systems. It is normally
// combined with the console logger through MultiCheckLogger.
type JUnitCheckLogger struct {
	filePath  string
	targetURL string
	filters   RegexFilters
	ids       []CheckID
	checks    map[string]*jUnitCheckStatus
	startTime time.Time
	lock      sync.Mutex
}

type jUnitCheckStatus struct {
	failures     []error
	skipped      bool
	skipReason   string
	observations []string
	output       string
	startTime    time.Time
	duration     time.Duration
}

type jUnitXMLDocument struct {
	XMLName xml.Name            `xml:"testsuites"`
	Suites  []jUnitXMLTestSuite `xml:"testsuite"`
}

type jUnitXMLTestSuite struct {
	Name       string             `xml:"name,attr"`
	Checks     int                `xml:"tests,attr"`
	Failures   int                `xml:"failures,attr"`
	Skipped    int                `xml:"skipped,attr"`
	TimeInSec  float64            `xml:"time,attr"`
	Properties []jUnitXMLProperty `xml:"properties>property"`
	Cases      []jUnitXMLTestCase `xml:"testcase"`
}

type jUnitXMLProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type jUnitXMLTestCase struct {
	Name      string           `xml:"name,attr"`
	TimeInSec float64          `xml:"time,attr"`
	Failure   *jUnitXMLFailure `xml:"failure,omitempty"`
	Skipped   *jUnitXMLSkipped `xml:"skipped,omitempty"`
}

type jUnitXMLFailure struct {
	Message  string `xml:"message,attr"`
	Contents string `xml:",chardata"`
}

type jUnitXMLSkipped struct {
	Message string `xml:"message,attr"`
}

// NewJUnitCheckLogger creates a JUnitCheckLogger that will write to filePath.
// The target URL and any filter patterns are recorded as suite properties so
// a report can be traced back to the deployment it describes.
func NewJUnitCheckLogger(filePath string, targetURL string, filters RegexFilters) *JUnitCheckLogger {
	return &JUnitCheckLogger{
		filePath:  filePath,
		targetURL: targetURL,
		filters:   filters,
		checks:    make(map[string]*jUnitCheckStatus),
		startTime: time.Now(),
	}
}

func (j *JUnitCheckLogger) CheckStarted(id CheckID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	j.ids = append(j.ids, id)
	j.checks[id.String()] = &jUnitCheckStatus{startTime: time.Now()}
}

func (j *JUnitCheckLogger) CheckObservation(id CheckID, status Status, message string) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if c := j.checks[id.String()]; c != nil {
		c.observations = append(c.observations, fmt.Sprintf("[%s] %s", status, message))
	}
}

func (j *JUnitCheckLogger) CheckError(id CheckID, err error) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if c := j.checks[id.String()]; c != nil {
		c.failures = append(c.failures, err)
	}
}

func (j *JUnitCheckLogger) CheckFinished(id CheckID, failed bool, debugOutput CapturedOutput) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if c := j.checks[id.String()]; c != nil {
		c.duration = time.Since(c.startTime)
		c.output = debugOutput.ToString("")
	}
}

func (j *JUnitCheckLogger) CheckSkipped(id CheckID, reason string) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if c := j.checks[id.String()]; c != nil {
		c.skipped = true
		c.skipReason = reason
	}
}

func (j *JUnitCheckLogger) EndLog(results Results) error {
	j.lock.Lock()
	defer j.lock.Unlock()

	suite := jUnitXMLTestSuite{
		Name:      "deployment checks",
		TimeInSec: time.Since(j.startTime).Seconds(),
		Properties: []jUnitXMLProperty{
			{Name: "target.url", Value: j.targetURL},
		},
	}
	if j.filters.MustMatch.IsDefined() {
		suite.Properties = append(suite.Properties,
			jUnitXMLProperty{Name: "filter.run", Value: j.filters.MustMatch.String()})
	}
	if j.filters.MustNotMatch.IsDefined() {
		suite.Properties = append(suite.Properties,
			jUnitXMLProperty{Name: "filter.skip", Value: j.filters.MustNotMatch.String()})
	}

	for _, id := range j.ids {
		c := j.checks[id.String()]
		testCase := jUnitXMLTestCase{
			Name:      id.String(),
			TimeInSec: c.duration.Seconds(),
		}
		switch {
		case c.skipped:
			suite.Skipped++
			testCase.Skipped = &jUnitXMLSkipped{Message: c.skipReason}
		case len(c.failures) > 0:
			suite.Failures++
			messages := make([]string, 0, len(c.failures))
			for _, err := range c.failures {
				messages = append(messages, err.Error())
			}
			contents := strings.Join(c.observations, "\n")
			if c.output != "" {
				contents += "\n" + c.output
			}
			testCase.Failure = &jUnitXMLFailure{
				Message:  strings.Join(messages, "; "),
				Contents: contents,
			}
		}
		suite.Checks++
		suite.Cases = append(suite.Cases, testCase)
	}

	doc := jUnitXMLDocument{Suites: []jUnitXMLTestSuite{suite}}
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append([]byte(xml.Header), data...)
	return os.WriteFile(j.filePath, data, 0644)
}
