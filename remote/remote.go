// Package remote runs commands on the deployment host, which is how the
// harness verifies things that are not reachable through the HTTP API, such
// as the installed CLI binary.
package remote

import (
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
)

// SSHRunner executes commands on a remote host through the local ssh
// executable. Sessions are strictly non-interactive: BatchMode keeps ssh
// from ever prompting, so a missing key or an unknown host fails the command
// instead of hanging the run.
type SSHRunner struct {
	// Host is the ssh destination, in user@host form.
	Host string

	// SSHCommand overrides the executable used to open the session; empty
	// means "ssh". Tests use this to substitute a local command.
	SSHCommand string
}

// Run executes the given shell command on the remote host and returns its
// combined standard output and standard error. A non-zero remote exit status
// is reported as a non-nil error, along with whatever output was captured.
func (r *SSHRunner) Run(command string) (string, error) {
	sshCommand := r.SSHCommand
	if sshCommand == "" {
		sshCommand = "ssh"
	}
	cmd := exec.Command(sshCommand, "-o", "BatchMode=yes", r.Host, command)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// QuoteCommand builds a shell command line from an argument list, quoting
// each argument as needed for the remote shell.
func QuoteCommand(args ...string) string {
	var b commandBuilder
	b.add(args...)
	return b.String()
}
