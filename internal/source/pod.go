package source

import (
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// PodAdapter streams a Kubernetes pod's logs via an external
// `kubectl logs -f` process.
//
// Grounded on other_examples' kubetail-org/kubetail stream.go (which
// models the same pod/namespace/container selection against the k8s API
// directly); bark reduces this to a subprocess invocation per spec.md §6
// instead of wiring a full client-go dependency, since nothing else in
// SPEC_FULL.md needs a live Kubernetes client.
type PodAdapter struct {
	Pod       string
	Namespace string // optional
	Container string // optional
}

// Start validates Pod/Namespace/Container and launches
// `kubectl logs -f [-n ns] [-c ctr] -- pod`.
func (a *PodAdapter) Start(ctx context.Context) (<-chan Line, error) {
	if err := ValidateIdentifier(a.Pod); err != nil {
		return nil, errors.Wrap(err, "pod source: pod")
	}
	if a.Namespace != "" {
		if err := ValidateIdentifier(a.Namespace); err != nil {
			return nil, errors.Wrap(err, "pod source: namespace")
		}
	}
	if a.Container != "" {
		if err := ValidateIdentifier(a.Container); err != nil {
			return nil, errors.Wrap(err, "pod source: container")
		}
	}

	args := []string{"logs", "-f"}
	if a.Namespace != "" {
		args = append(args, "-n", a.Namespace)
	}
	if a.Container != "" {
		args = append(args, "-c", a.Container)
	}
	args = append(args, "--", a.Pod)

	cmd := exec.Command("kubectl", args...)
	return runLineStream(ctx, cmd)
}
