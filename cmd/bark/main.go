package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bark-log/bark/internal/app"
	"github.com/bark-log/bark/internal/config"
	"github.com/bark-log/bark/internal/diag"
	"github.com/bark-log/bark/internal/logline"
	"github.com/bark-log/bark/internal/mux"
	"github.com/bark-log/bark/internal/render"
	"github.com/bark-log/bark/internal/source"
	"github.com/bark-log/bark/internal/store"
	"github.com/bark-log/bark/internal/theme"
)

// ingestChannelCapacity follows spec.md §5's "capacity >= 4x the render
// scheduler's batch size" sizing note (render's own batch is 500).
const ingestChannelCapacity = 2000

func main() {
	defer diag.Recover(nil)

	plan, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "bark:", err)
		printUsage()
		os.Exit(2)
	}
	if plan.help {
		printUsage()
		os.Exit(0)
	}

	cfg := config.Load()
	for _, w := range cfg.Warnings {
		fmt.Fprintln(os.Stderr, "bark:", w)
	}
	th, ok := theme.Get(cfg.Theme)
	if !ok {
		th, _ = theme.Get(theme.DefaultName)
	}

	st, err := store.New(cfg.MaxLines)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bark:", err)
		os.Exit(1)
	}
	mx := mux.New(ingestChannelCapacity)
	state := app.New(st, mx, cfg.Theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startPlannedSources(ctx, state, plan)
	openDiscoveryPickers(ctx, state, plan)

	m := render.New(state, th, cfg)
	if len(cfg.Warnings) > 0 {
		m.StatusMessage = strings.Join(cfg.Warnings, "; ")
		m.StatusIsError = true
	}
	m.SourceStarter = func(req render.SourceRequest) {
		startPickerSelection(ctx, state, req)
	}

	logger := diag.NewFileLogger("/tmp/bark-diag.log")
	logger.Info().Int("files", len(plan.files)).Int("containers", len(plan.containers)).
		Int("pods", len(plan.pods)).Int("remotes", len(plan.remotes)).Msg("bark starting")

	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	diag.SafeGo("shutdown-handler", func() {
		<-sigChan
		mx.Shutdown()
		prog.Quit()
	})

	if _, err := prog.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "bark:", err)
		mx.Shutdown()
		os.Exit(1)
	}

	mx.Shutdown()
}

// startPlannedSources registers every source named explicitly on the
// command line. Adapter start failures are non-fatal per spec.md §7:
// addSource turns them into an error line inline rather than aborting.
func startPlannedSources(ctx context.Context, state *app.State, plan cliPlan) {
	for _, path := range plan.files {
		addSource(ctx, state, logline.KindFile, path, &source.FileAdapter{Path: path})
	}
	for _, name := range plan.containers {
		addSource(ctx, state, logline.KindContainer, name, &source.ContainerAdapter{Name: name})
	}
	for _, p := range plan.pods {
		addSource(ctx, state, logline.KindPod, p.pod, &source.PodAdapter{Pod: p.pod, Namespace: p.namespace, Container: p.container})
	}
	for _, r := range plan.remotes {
		label := r.userHost + ":" + r.path
		addSource(ctx, state, logline.KindRemote, label, &source.RemoteAdapter{UserHost: r.userHost, Path: r.path})
	}
}

// openDiscoveryPickers runs the Docker/Kubernetes discovery call-outs
// spec.md §1 names as an external collaborator and either opens the
// matching picker overlay or, for --all, wires up every discovered
// source directly.
func openDiscoveryPickers(ctx context.Context, state *app.State, plan cliPlan) {
	wantDocker := plan.dockerPicker || plan.all
	wantK8s := plan.k8sPicker || plan.all

	if wantDocker {
		names, err := discoverContainers(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bark: docker discovery:", err)
		} else if plan.all {
			for _, name := range names {
				addSource(ctx, state, logline.KindContainer, name, &source.ContainerAdapter{Name: name})
			}
		} else if plan.dockerPicker {
			state.OpenPicker(app.PickerDocker, names)
		}
	}
	if wantK8s {
		names, err := discoverPods(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bark: kubernetes discovery:", err)
		} else if plan.all {
			for _, name := range names {
				addSource(ctx, state, logline.KindPod, name, &source.PodAdapter{Pod: name})
			}
		} else if plan.k8sPicker && state.Picker == nil {
			state.OpenPicker(app.PickerKubernetes, names)
		}
	}
}

// startPickerSelection turns a confirmed picker choice into a running
// source, called from render.Model's per-tick SourceStarter hook.
func startPickerSelection(ctx context.Context, state *app.State, req render.SourceRequest) {
	switch req.Kind {
	case app.PickerDocker:
		addSource(ctx, state, logline.KindContainer, req.Name, &source.ContainerAdapter{Name: req.Name})
	case app.PickerKubernetes:
		addSource(ctx, state, logline.KindPod, req.Name, &source.PodAdapter{Pod: req.Name})
	}
}

// addSource registers a descriptor and starts adapter. If the adapter
// fails to start, the failure is appended to the store as an inline
// error line tagged with the new source, rather than aborting bark.
func addSource(ctx context.Context, state *app.State, kind logline.SourceKind, label string, adapter source.Adapter) {
	desc := state.RegisterSource(kind, label)
	if err := state.Mux.Add(ctx, desc.ID, adapter); err != nil {
		line := logline.LogLine{
			SourceID:   desc.ID,
			ReceivedAt: time.Now(),
			Raw:        []byte("bark: source error: " + err.Error()),
		}
		seq := state.Store.Append(line)
		for _, p := range state.Panes {
			p.Ingest(state.Store, []logline.Seq{seq})
		}
	}
}
