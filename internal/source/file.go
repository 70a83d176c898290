package source

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// FileAdapter tails a local file via an external `tail -F` process.
// Grounded on eviltik-docker-tui's streamContainer loop in logbroker.go,
// generalized from `docker logs -f` to `tail -F -- <path>`.
type FileAdapter struct {
	Path string
}

// Start validates Path and launches `tail -F -- <path>`.
func (a *FileAdapter) Start(ctx context.Context) (<-chan Line, error) {
	if a.Path == "" {
		return nil, errors.New("file source: path must not be empty")
	}
	if err := ValidateIdentifier(a.Path); err != nil {
		return nil, errors.Wrap(err, "file source")
	}

	cmd := exec.Command("tail", "-F", "--", a.Path)
	return runLineStream(ctx, cmd)
}
