package main

import (
	"context"
	"encoding/json"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/pkg/errors"
)

// discoverContainers lists running container names for the Docker picker.
//
// Grounded on eviltik-docker-tui's loadContainers (docker.go): same
// client.ContainerList call and name-sort, trimmed to the names bark's
// picker needs instead of the full types.Container its list view
// rendered.
func discoverContainers(ctx context.Context) ([]string, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, errors.Wrap(err, "docker: connect")
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	containers, err := cli.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "docker: list containers")
	}

	names := make([]string, 0, len(containers))
	for _, c := range containers {
		if len(c.Names) == 0 {
			continue
		}
		names = append(names, strings.TrimPrefix(c.Names[0], "/"))
	}
	sort.Strings(names)
	return names, nil
}

// kubectlPod is the subset of `kubectl get pods -o json` this discovery
// call-out reads.
type kubectlPod struct {
	Metadata struct {
		Name string `json:"name"`
	} `json:"metadata"`
}

// discoverPods lists running pod names in the current kubeconfig context
// for the Kubernetes picker, via the same kubectl CLI the PodAdapter
// shells out to for `kubectl logs`.
func discoverPods(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "kubectl", "get", "pods", "-o", "json")
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, "kubectl: list pods")
	}

	var list struct {
		Items []kubectlPod `json:"items"`
	}
	if err := json.Unmarshal(out, &list); err != nil {
		return nil, errors.Wrap(err, "kubectl: parse pod list")
	}

	names := make([]string, 0, len(list.Items))
	for _, p := range list.Items {
		names = append(names, p.Metadata.Name)
	}
	sort.Strings(names)
	return names, nil
}
