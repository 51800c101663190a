package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/RevCBH/tuxdock/internal/container"
)

// maxPortMappings caps how many -p flags run-interactive will prompt for.
const maxPortMappings = 16

const portForwardingHelp = `
Port Forwarding Explanation:
  '-p hostPort:containerPort' exposes the container's port to the host.
  Example: '-p 8080:80' allows access via http://localhost:8080
`

func (m *Menu) pullImage(ctx context.Context) error {
	image, err := m.prompt.String("Enter image to pull (e.g., alpine): ")
	if err != nil {
		return err
	}
	if !m.validImage(image, container.ValidateImage) {
		return nil
	}
	m.report(m.mgr.Pull(ctx, image))
	return nil
}

func (m *Menu) runInteractive(ctx context.Context) error {
	image, err := m.prompt.String("Enter image to run interactively (e.g., alpine): ")
	if err != nil {
		return err
	}
	if !m.validImage(image, container.ValidateImageOrID) {
		return nil
	}

	count, err := m.prompt.Int("How many port mappings? ")
	if err != nil && !errors.Is(err, ErrNotNumber) {
		return err
	}
	if err != nil || count < 0 || count > maxPortMappings {
		m.failure("Invalid port count.")
		return nil
	}

	ports := make([]string, 0, count)
	for i := 0; i < count; i++ {
		raw, err := m.prompt.String(fmt.Sprintf("Enter mapping #%d (format host:container, e.g., 8080:80): ", i+1))
		if err != nil {
			return err
		}
		pm, err := container.ParsePortMapping(raw)
		if err != nil {
			m.logger.WithError(err).Debug("rejected port mapping")
			m.failure(fmt.Sprintf("Invalid port mapping: %s.", raw))
			return nil
		}
		ports = append(ports, pm.Raw)
	}

	fmt.Fprint(m.out, portForwardingHelp+"\n")
	m.report(m.mgr.RunInteractive(ctx, image, ports))
	return nil
}

func (m *Menu) listContainers(ctx context.Context) error {
	m.report(m.mgr.ListAll(ctx))
	return nil
}

func (m *Menu) listImages(ctx context.Context) error {
	m.report(m.mgr.ListImages(ctx))
	return nil
}

func (m *Menu) startInteractive(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select container to start interactively")
	if err != nil || id == "" {
		return err
	}
	m.report(m.mgr.Start(ctx, id, true))
	return nil
}

func (m *Menu) startDetached(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select container to start detached")
	if err != nil || id == "" {
		return err
	}
	m.report(m.mgr.Start(ctx, id, false))
	return nil
}

func (m *Menu) deleteImage(ctx context.Context) error {
	image, err := m.prompt.String("Enter image name or ID to delete: ")
	if err != nil {
		return err
	}
	if !m.validImage(image, container.ValidateImageOrID) {
		return nil
	}
	m.report(m.mgr.RemoveImage(ctx, image))
	return nil
}

func (m *Menu) stopContainer(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select container to stop")
	if err != nil || id == "" {
		return err
	}
	m.report(m.mgr.Stop(ctx, id))
	return nil
}

func (m *Menu) removeContainer(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select container to remove")
	if err != nil || id == "" {
		return err
	}
	m.report(m.mgr.Remove(ctx, id))
	return nil
}

func (m *Menu) execShell(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select running container for shell access")
	if err != nil || id == "" {
		return err
	}
	m.report(m.mgr.ExecShell(ctx, id))
	return nil
}

func (m *Menu) spinUpDatabase(ctx context.Context) error {
	raw, err := m.prompt.String("Enter port mapping (e.g., 3306:3306): ")
	if err != nil {
		return err
	}
	pm, err := container.ParsePortMapping(raw)
	if err != nil {
		m.logger.WithError(err).Debug("rejected port mapping")
		m.failure(fmt.Sprintf("Invalid port mapping: %s.", raw))
		return nil
	}

	password, err := m.prompt.Secret("Enter MySQL root password: ")
	if err != nil {
		return err
	}
	if password == "" {
		m.failure("Password must not be empty.")
		return nil
	}

	version, err := m.prompt.String("Enter MySQL version tag (e.g., 8): ")
	if err != nil {
		return err
	}

	spec := container.DatabaseSpec{
		Image:       m.db.Image,
		Version:     version,
		Name:        m.db.ContainerName,
		Port:        pm.Raw,
		PasswordEnv: m.db.PasswordEnv,
		Password:    password,
	}
	if !m.validImage(spec.ImageRef(), container.ValidateImage) {
		return nil
	}

	if port := pm.PublishedPort(); port != "" {
		fmt.Fprintf(m.out, "\nLaunching MySQL container (accessible via localhost:%s)\n", port)
	} else {
		fmt.Fprintln(m.out, "\nLaunching MySQL container (host port assigned by the runtime)")
	}
	m.report(m.mgr.RunDatabase(ctx, spec))
	return nil
}

func (m *Menu) showIP(ctx context.Context) error {
	id, err := m.SelectContainer(ctx, "Select container to view IP")
	if err != nil || id == "" {
		return err
	}

	ip, err := m.mgr.InspectIP(ctx, id)
	if errors.Is(err, container.ErrSpawn) {
		m.failure("Failed to inspect container: " + err.Error())
		return nil
	}
	if err != nil {
		m.logger.WithError(err).Debug("inspect failed")
	}

	if ip == "" {
		m.info("No IP address found (container may be stopped or not attached to a network).")
		return nil
	}
	fmt.Fprintf(m.out, "Container IP Address: %s\n", m.styles.Value.Render(ip))
	return nil
}

func (m *Menu) validImage(ref string, validate func(string) error) bool {
	if err := validate(ref); err != nil {
		m.logger.WithError(err).Debug("rejected image reference")
		m.failure(fmt.Sprintf("Invalid image reference: %s.", ref))
		return false
	}
	return true
}
