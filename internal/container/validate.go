package container

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"
	"github.com/docker/go-connections/nat"
)

// PortMapping is a validated publish mapping.
type PortMapping struct {
	// Raw is the mapping exactly as entered; it is what gets passed to -p
	Raw string

	HostPort      string
	ContainerPort string
}

// ParsePortMapping validates `[ip:]hostPort:containerPort[/proto]`.
// The mapping is passed to the runtime unchanged; parsing only rejects
// malformed input and extracts the host port for display.
func ParsePortMapping(raw string) (PortMapping, error) {
	if raw == "" || strings.HasPrefix(raw, "-") {
		return PortMapping{}, fmt.Errorf("invalid port mapping %q", raw)
	}
	mappings, err := nat.ParsePortSpec(raw)
	if err != nil {
		return PortMapping{}, fmt.Errorf("invalid port mapping %q: %w", raw, err)
	}
	if len(mappings) == 0 {
		return PortMapping{}, fmt.Errorf("invalid port mapping %q", raw)
	}

	first := mappings[0]
	pm := PortMapping{
		Raw:           raw,
		HostPort:      first.Binding.HostPort,
		ContainerPort: first.Port.Port(),
	}
	return pm, nil
}

// PublishedPort is the host port reachable on localhost. It is empty
// when the mapping names only a container port and the runtime picks
// an ephemeral host port at start.
func (p PortMapping) PublishedPort() string {
	return p.HostPort
}

// ValidateImage checks that s is a pullable image reference such as
// "alpine", "mysql:8" or "ghcr.io/org/app@sha256:...".
func ValidateImage(s string) error {
	if _, err := reference.ParseNormalizedNamed(s); err != nil {
		return fmt.Errorf("invalid image reference %q: %w", s, err)
	}
	return nil
}

// ValidateImageOrID accepts anything ValidateImage does plus image IDs.
func ValidateImageOrID(s string) error {
	if strings.HasPrefix(s, "-") {
		return fmt.Errorf("invalid image reference %q", s)
	}
	if _, err := reference.ParseAnyReference(s); err != nil {
		return fmt.Errorf("invalid image reference %q: %w", s, err)
	}
	return nil
}
