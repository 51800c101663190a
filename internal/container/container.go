package container

import "strings"

// ContainerID is the identifier the runtime assigned to a container.
// It is never invented or shortened by tuxdock; display code truncates a copy.
type ContainerID string

// shortIDLength matches the width the docker CLI uses for short IDs.
const shortIDLength = 12

// Short returns the first 12 characters of the identifier.
func (id ContainerID) Short() string {
	if len(id) <= shortIDLength {
		return string(id)
	}
	return string(id[:shortIDLength])
}

// Container is one row of a container listing.
type Container struct {
	ID   ContainerID
	Name string
}

// ParseList turns `<id> <name>` rows into containers, preserving order.
// Rows with fewer than two whitespace-separated fields are skipped; any
// fields after the name are ignored.
func ParseList(lines []string) []Container {
	var containers []Container
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		containers = append(containers, Container{
			ID:   ContainerID(fields[0]),
			Name: fields[1],
		})
	}
	return containers
}

// DatabaseSpec specifies the detached database container started by RunDatabase.
type DatabaseSpec struct {
	// Image is the repository (e.g., "mysql"); Version is appended as the tag
	Image   string
	Version string

	// Name is the fixed container name (e.g., "mysql-container")
	Name string

	// Port is the publish spec as entered (e.g., "3306:3306")
	Port string

	// PasswordEnv and Password become -e PasswordEnv=Password
	PasswordEnv string
	Password    string
}

// ImageRef returns "<image>:<version>".
func (s DatabaseSpec) ImageRef() string {
	return s.Image + ":" + s.Version
}
