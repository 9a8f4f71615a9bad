package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/packetparamedic/deployment-validator/config"
	"github.com/packetparamedic/deployment-validator/framework"
)

type commandParams struct {
	urlOverride          string
	sshHostOverride      string
	remoteBinaryOverride string
	configFile           string
	filters              framework.RegexFilters
	skipFile             string
	recordFailures       string
	debug                bool
	debugAll             bool
	jUnitFile            string
	waitFor              time.Duration
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.urlOverride, "url", "", "base URL of the service API (default is the standard appliance address)")
	fs.StringVar(&c.sshHostOverride, "ssh-host", "", "ssh destination for the remote CLI check, as user@host")
	fs.StringVar(&c.remoteBinaryOverride, "remote-binary", "", "path of the CLI binary on the target host")
	fs.StringVar(&c.configFile, "config", "", "YAML file describing the target environment")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file with names of checks to skip")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all checks")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")
	fs.StringVar(&c.recordFailures, "record-failures", "", "file to write names of failed checks to")
	fs.DurationVar(&c.waitFor, "wait", 0, "how long to wait for the service to come up before running the checks")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// makeConfig resolves the target environment: built-in defaults first, then
// the config file if one was named, then any individual flag overrides.
func (c *commandParams) makeConfig() (config.Config, error) {
	cfg := config.Default()
	if c.configFile != "" {
		var err error
		cfg, err = config.LoadFile(c.configFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if c.urlOverride != "" {
		cfg.API.BaseURL = c.urlOverride
	}
	if c.sshHostOverride != "" {
		cfg.SSH.Host = c.sshHostOverride
	}
	if c.remoteBinaryOverride != "" {
		cfg.SSH.Binary = c.remoteBinaryOverride
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
