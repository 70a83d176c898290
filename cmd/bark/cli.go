package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// podSpec is a --k8s source together with its optional -n/-c modifiers.
type podSpec struct {
	pod, namespace, container string
}

// remoteSpec is a --ssh <user@host> <path> source.
type remoteSpec struct {
	userHost, path string
}

// cliPlan is the result of parsing bark's CLI surface (spec.md §6).
type cliPlan struct {
	files      []string
	containers []string
	pods       []podSpec
	remotes    []remoteSpec

	dockerPicker bool
	k8sPicker    bool
	all          bool

	help bool
}

// parseArgs implements spec.md §6's CLI surface: positional file paths;
// repeated --docker/--k8s/--ssh; -n/-c modifiers binding to the
// immediately preceding --k8s; --all; zero arguments implying --docker
// discovery. A malformed argument list is reported as an error, which
// cmd/bark turns into exit code 2.
//
// Grounded on eviltik-docker-tui's main.go, which scans os.Args[1:] by hand
// with a switch over recognized flags; bark generalizes that loop to
// consume the extra positional values each of its flags takes.
func parseArgs(args []string) (cliPlan, error) {
	var plan cliPlan

	i := 0
	next := func() (string, bool) {
		if i+1 < len(args) {
			i++
			return args[i], true
		}
		return "", false
	}

	for ; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--help", "-h":
			plan.help = true

		case "--all":
			plan.all = true

		case "--docker":
			if v, ok := next(); ok && !looksLikeFlag(v) {
				plan.containers = append(plan.containers, v)
			} else {
				if ok {
					i-- // put back a following flag, it is not this --docker's value
				}
				plan.dockerPicker = true
			}

		case "--k8s":
			spec := podSpec{}
			if v, ok := next(); ok && !looksLikeFlag(v) {
				spec.pod = v
				for {
					mod, ok := peekFlag(args, i+1)
					if !ok {
						break
					}
					i++
					val, ok := next()
					if !ok {
						return plan, errors.Errorf("--k8s: %s requires a value", mod)
					}
					switch mod {
					case "-n":
						spec.namespace = val
					case "-c":
						spec.container = val
					}
				}
				plan.pods = append(plan.pods, spec)
			} else {
				if ok {
					i--
				}
				plan.k8sPicker = true
			}

		case "--ssh":
			userHost, ok := next()
			if !ok {
				return plan, errors.New("--ssh requires <user@host> <path>")
			}
			path, ok := next()
			if !ok {
				return plan, errors.New("--ssh requires <user@host> <path>")
			}
			plan.remotes = append(plan.remotes, remoteSpec{userHost: userHost, path: path})

		case "-n", "-c":
			return plan, errors.Errorf("%s must immediately follow --k8s", arg)

		default:
			if looksLikeFlag(arg) {
				return plan, errors.Errorf("unrecognized argument %q", arg)
			}
			plan.files = append(plan.files, arg)
		}
	}

	if len(args) == 0 {
		plan.dockerPicker = true
	}

	return plan, nil
}

func looksLikeFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

// peekFlag reports whether args[idx] is a -n/-c modifier, without
// consuming it.
func peekFlag(args []string, idx int) (string, bool) {
	if idx >= len(args) {
		return "", false
	}
	if args[idx] == "-n" || args[idx] == "-c" {
		return args[idx], true
	}
	return "", false
}

func usage() string {
	return `bark - terminal log exploration tool

Usage: bark [paths...] [--docker [name]] [--k8s [pod] [-n ns] [-c container]] [--ssh user@host path] [--all]

  paths...                 tail local files
  --docker [name]          stream a container's logs; without a name, opens a picker
  --k8s [pod] [-n ns] [-c container]
                           stream a pod's logs; without a pod, opens a picker
  --ssh user@host path     tail path on a remote host over ssh
  --all                    stream every discovered container and pod
  --help, -h               show this message

With no arguments, bark opens the Docker container picker.
`
}

func printUsage() {
	fmt.Print(usage())
}
