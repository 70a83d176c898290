package source

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// hostKeyCheckingEnv is the env var spec.md §6 uses to select ssh's
// StrictHostKeyChecking mode.
const hostKeyCheckingEnv = "BARK_SSH_HOST_KEY_CHECKING"

var validHostKeyModes = map[string]bool{"yes": true, "accept-new": true, "no": true}

// hostKeyCheckingMode reads BARK_SSH_HOST_KEY_CHECKING, defaulting to
// "yes" and rejecting unrecognized values (falls back to the default
// rather than failing the adapter, consistent with spec.md §7's
// config/env parse-failure policy: non-fatal, defaults used).
func hostKeyCheckingMode() string {
	mode := os.Getenv(hostKeyCheckingEnv)
	if validHostKeyModes[mode] {
		return mode
	}
	return "yes"
}

// RemoteAdapter tails a file on a remote host over `ssh ... tail -F`.
// Grounded on the same runLineStream process-lifecycle handling as
// FileAdapter, since ssh's stdout is itself a plain line stream once the
// remote tail command is running.
type RemoteAdapter struct {
	UserHost string // "user@host"
	Path     string
}

// Start validates UserHost/Path and launches:
//
//	ssh -o BatchMode=yes -o StrictHostKeyChecking=<mode> -- <user@host> "tail -F <path>"
func (a *RemoteAdapter) Start(ctx context.Context) (<-chan Line, error) {
	if err := ValidateIdentifier(a.UserHost); err != nil {
		return nil, errors.Wrap(err, "remote source: user@host")
	}
	if err := ValidateIdentifier(a.Path); err != nil {
		return nil, errors.Wrap(err, "remote source: path")
	}

	remoteCmd := fmt.Sprintf("tail -F %s", shellQuote(a.Path))
	cmd := exec.Command("ssh",
		"-o", "BatchMode=yes",
		"-o", "StrictHostKeyChecking="+hostKeyCheckingMode(),
		"--", a.UserHost, remoteCmd,
	)
	return runLineStream(ctx, cmd)
}

// shellQuote wraps s in single quotes for the remote shell, escaping any
// embedded single quote. Path has already passed ValidateIdentifier
// (printable ASCII, no leading '-') before reaching here.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
