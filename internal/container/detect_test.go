package container

import (
	"errors"
	"os/exec"
	"testing"
)

func TestDetectRuntime_FindsDocker(t *testing.T) {
	// Skip if docker is not available
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}

	runtime, err := DetectRuntime()
	if err != nil {
		t.Skip("docker found but not working")
	}

	// Docker should be preferred if both are available
	if runtime != "docker" {
		t.Errorf("expected docker, got %s", runtime)
	}
}

func TestDetectRuntime_SkipsFailingProbe(t *testing.T) {
	// "sh" and "true" exist on any system running these tests.
	got, err := detectRuntime([]string{"sh", "true"}, func(bin string) error {
		if bin == "sh" {
			return errors.New("daemon not reachable")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("detectRuntime() failed: %v", err)
	}
	if got != "true" {
		t.Errorf("expected true, got %s", got)
	}
}

func TestDetectRuntime_ReturnsErrorWhenNoneAvailable(t *testing.T) {
	_, err := detectRuntime([]string{"tuxdock-missing-runtime"}, func(string) error { return nil })
	if !errors.Is(err, ErrNoRuntime) {
		t.Errorf("expected ErrNoRuntime, got %v", err)
	}
}
