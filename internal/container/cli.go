package container

import (
	"context"
	"strings"
)

// listFormat makes `ps` print exactly `<id> <name>` per row.
const listFormat = "{{.ID}} {{.Names}}"

// ipFormat prints the IP address of each attached network, concatenated.
const ipFormat = "{{range .NetworkSettings.Networks}}{{.IPAddress}}{{end}}"

// CLIManager implements Manager on top of an Executor for the docker/podman CLI.
type CLIManager struct {
	exec  Executor
	shell string
}

// NewCLIManager creates a Manager that runs commands through exec and
// starts shell for interactive sessions.
func NewCLIManager(exec Executor, shell string) *CLIManager {
	return &CLIManager{exec: exec, shell: shell}
}

// List implements Manager. Output that could not be read yields the rows
// parsed so far together with the error.
func (m *CLIManager) List(ctx context.Context) ([]Container, error) {
	lines, err := m.exec.Capture(ctx, ListArgs()...)
	return ParseList(lines), err
}

func (m *CLIManager) Pull(ctx context.Context, image string) error {
	return m.exec.Run(ctx, PullArgs(image)...)
}

func (m *CLIManager) RunInteractive(ctx context.Context, image string, ports []string) error {
	return m.exec.Run(ctx, RunInteractiveArgs(image, m.shell, ports)...)
}

func (m *CLIManager) ListAll(ctx context.Context) error {
	return m.exec.Run(ctx, "ps", "-a")
}

func (m *CLIManager) ListImages(ctx context.Context) error {
	return m.exec.Run(ctx, "images")
}

func (m *CLIManager) Start(ctx context.Context, id ContainerID, attach bool) error {
	return m.exec.Run(ctx, StartArgs(id, attach)...)
}

func (m *CLIManager) RemoveImage(ctx context.Context, image string) error {
	return m.exec.Run(ctx, "rmi", image)
}

func (m *CLIManager) Stop(ctx context.Context, id ContainerID) error {
	return m.exec.Run(ctx, "stop", string(id))
}

func (m *CLIManager) Remove(ctx context.Context, id ContainerID) error {
	return m.exec.Run(ctx, "rm", string(id))
}

func (m *CLIManager) ExecShell(ctx context.Context, id ContainerID) error {
	return m.exec.Run(ctx, ExecShellArgs(id, m.shell)...)
}

func (m *CLIManager) RunDatabase(ctx context.Context, spec DatabaseSpec) error {
	return m.exec.Run(ctx, DatabaseArgs(spec)...)
}

// InspectIP implements Manager. Only the first output line is considered.
func (m *CLIManager) InspectIP(ctx context.Context, id ContainerID) (string, error) {
	lines, err := m.exec.Capture(ctx, InspectIPArgs(id)...)
	if len(lines) == 0 {
		return "", err
	}
	return strings.TrimSpace(lines[0]), err
}

// ListArgs lists all containers as `<id> <name>` rows.
func ListArgs() []string {
	return []string{"ps", "-a", "--format", listFormat}
}

// PullArgs builds `pull <image>`.
func PullArgs(image string) []string {
	return []string{"pull", image}
}

// RunInteractiveArgs builds `run -it [-p spec]... <image> <shell>`.
func RunInteractiveArgs(image, shell string, ports []string) []string {
	args := []string{"run", "-it"}
	for _, p := range ports {
		args = append(args, "-p", p)
	}
	return append(args, image, shell)
}

// StartArgs builds `start -ai <id>` or `start <id>`.
func StartArgs(id ContainerID, attach bool) []string {
	if attach {
		return []string{"start", "-ai", string(id)}
	}
	return []string{"start", string(id)}
}

// ExecShellArgs builds `exec -it <id> <shell>`.
func ExecShellArgs(id ContainerID, shell string) []string {
	return []string{"exec", "-it", string(id), shell}
}

// DatabaseArgs builds `run -p <port> --name <name> -e <VAR>=<password> -d <image>:<version>`.
func DatabaseArgs(spec DatabaseSpec) []string {
	return []string{
		"run",
		"-p", spec.Port,
		"--name", spec.Name,
		"-e", spec.PasswordEnv + "=" + spec.Password,
		"-d", spec.ImageRef(),
	}
}

// InspectIPArgs builds `inspect -f <format> <id>`.
func InspectIPArgs(id ContainerID) []string {
	return []string{"inspect", "-f", ipFormat, string(id)}
}

// Verify CLIManager implements Manager interface
var _ Manager = (*CLIManager)(nil)
