package container

import (
	"errors"
	"os/exec"
)

// ErrNoRuntime is returned when no container runtime is found.
var ErrNoRuntime = errors.New("no container runtime found (need docker or podman)")

// runtimeCandidates is the probe order used by DetectRuntime.
var runtimeCandidates = []string{"docker", "podman"}

// DetectRuntime finds an available container runtime.
// Checks docker first, then podman. Verifies the binary actually works
// by running `<runtime> version`.
func DetectRuntime() (string, error) {
	return detectRuntime(runtimeCandidates, func(bin string) error {
		return exec.Command(bin, "version").Run()
	})
}

func detectRuntime(candidates []string, probe func(bin string) error) (string, error) {
	for _, bin := range candidates {
		if _, err := exec.LookPath(bin); err != nil {
			continue
		}
		if err := probe(bin); err != nil {
			continue
		}
		return bin, nil
	}
	return "", ErrNoRuntime
}
