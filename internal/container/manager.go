package container

import "context"

// Manager maps each menu action onto one runtime invocation.
// Implementations hold no state between calls.
type Manager interface {
	// List returns the containers the runtime reports, stopped ones included.
	List(ctx context.Context) ([]Container, error)

	// Pull downloads an image.
	Pull(ctx context.Context, image string) error

	// RunInteractive creates a container from image with a TTY attached,
	// publishing each port spec in order, and starts the configured shell.
	RunInteractive(ctx context.Context, image string, ports []string) error

	// ListAll prints every container, running or not.
	ListAll(ctx context.Context) error

	// ListImages prints local images.
	ListImages(ctx context.Context) error

	// Start starts a stopped container, attaching the terminal when attach is set.
	Start(ctx context.Context, id ContainerID, attach bool) error

	// RemoveImage deletes an image by name or ID.
	RemoveImage(ctx context.Context, image string) error

	// Stop stops a running container.
	Stop(ctx context.Context, id ContainerID) error

	// Remove removes a container. The container must be stopped first.
	Remove(ctx context.Context, id ContainerID) error

	// ExecShell opens the configured shell inside a running container.
	ExecShell(ctx context.Context, id ContainerID) error

	// RunDatabase starts a detached database container.
	RunDatabase(ctx context.Context, spec DatabaseSpec) error

	// InspectIP returns the address on the container's first network,
	// or "" when it has none.
	InspectIP(ctx context.Context, id ContainerID) (string, error)
}
