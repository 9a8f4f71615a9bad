package checks

import (
	"strings"

	"github.com/packetparamedic/deployment-validator/remote"
)

// productName must appear in the CLI's version output; it is how the check
// knows it ran the real binary and not a stale or unrelated executable.
const productName = "packetparamedic"

// DoRemoteCLICheck verifies the deployed CLI binary by running it on the
// deployment host with its version flag. The check fails if the command
// cannot run, exits non-zero, or reports a product name other than the
// expected one.
func DoRemoteCLICheck(t *T) {
	command := remote.QuoteCommand(t.env.RemoteBinary, "--version")
	t.Debug("running remote command: %s", command)
	output, err := t.env.Remote.Run(command)
	output = strings.TrimSpace(output)
	if err != nil {
		t.Errorf("remote CLI invocation failed: %s: %s", err, output)
		return
	}
	if !strings.Contains(output, productName) {
		t.Errorf("unexpected CLI output: %s", output)
		return
	}
	t.Pass("CLI version check passed: %s", output)
}
