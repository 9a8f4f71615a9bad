package main

import (
	"bufio"
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/packetparamedic/deployment-validator/checks"
	"github.com/packetparamedic/deployment-validator/client"
	"github.com/packetparamedic/deployment-validator/framework"
	"github.com/packetparamedic/deployment-validator/remote"
)

//go:embed VERSION
var versionString string // comes from the VERSION file which we update for each release

func main() {
	fmt.Printf("deployment-validator v%s\n", strings.TrimSpace(versionString))

	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	results, err := run(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if !results.OK() {
		os.Exit(1)
	}
}

func run(params commandParams) (framework.Results, error) {
	if params.skipFile != "" {
		if err := loadSuppressions(&params); err != nil {
			return framework.Results{}, err
		}
	}

	cfg, err := params.makeConfig()
	if err != nil {
		return framework.Results{}, err
	}

	serviceClient := client.New(cfg.API.BaseURL)
	if params.waitFor > 0 {
		if err := serviceClient.WaitForHealthy(params.waitFor, os.Stdout); err != nil {
			// An unreachable service is exactly what the checks exist to
			// report, so the suite still runs; every check will then fail
			// with its own explanation.
			fmt.Fprintln(os.Stderr, err)
		}
	}

	env := &checks.Env{
		API:          serviceClient,
		Remote:       &remote.SSHRunner{Host: cfg.SSH.Host},
		RemoteBinary: cfg.SSH.Binary,
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Printf("Validating deployment at %s\n", cfg.API.BaseURL)

	consoleLogger := &framework.ConsoleCheckLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	var checkLogger framework.CheckLogger = consoleLogger
	if params.jUnitFile != "" {
		checkLogger = framework.MultiCheckLogger{Loggers: []framework.CheckLogger{
			consoleLogger,
			framework.NewJUnitCheckLogger(params.jUnitFile, cfg.API.BaseURL, params.filters),
		}}
	}

	results := checks.RunSuite(env, params.filters.AsFilter, checkLogger)

	fmt.Println()
	if err := checkLogger.EndLog(results); err != nil {
		return framework.Results{}, fmt.Errorf("error writing log: %s", err)
	}

	if params.recordFailures != "" {
		f, err := os.Create(params.recordFailures)
		if err != nil {
			return framework.Results{}, fmt.Errorf("cannot create suppression file: %s", err)
		}
		for _, check := range results.Failures {
			fmt.Fprintln(f, check.CheckID)
		}
		_ = f.Close()
	}

	return results, nil
}

// loadSuppressions turns each line of the -skip-from file into a literal
// MustNotMatch pattern. The file format is one check name per line, such as a
// file previously written by -record-failures.
func loadSuppressions(params *commandParams) error {
	file, err := os.Open(params.skipFile)
	if err != nil {
		return fmt.Errorf("cannot open provided suppression file: %s", err)
	}
	defer func() { _ = file.Close() }()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		// Ignore blank lines
		if strings.TrimSpace(line) == "" {
			continue
		}
		escaped := regexp.QuoteMeta(line)
		if err := params.filters.MustNotMatch.Set(escaped); err != nil {
			return fmt.Errorf("cannot parse suppression: %s", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("while processing suppression file: %s", err)
	}
	return nil
}
