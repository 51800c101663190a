package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/RevCBH/tuxdock/internal/container"
)

// SelectContainer lists containers, asks for a 1-based ordinal and returns
// the full identifier at that position.
//
// An empty ID with a nil error means nothing was selected: there were no
// containers or the choice was out of range. The caller's action is then
// abandoned. The only error returned is end of input.
func (m *Menu) SelectContainer(ctx context.Context, prompt string) (container.ContainerID, error) {
	containers, err := m.mgr.List(ctx)
	if err != nil {
		// Spawn failures and runtime errors degrade to whatever rows were read.
		m.logger.WithError(err).Debug("container listing failed")
	}

	if len(containers) == 0 {
		m.info("No containers available.")
		return "", nil
	}

	fmt.Fprintln(m.out, "\nAvailable Containers:")
	for i, c := range containers {
		fmt.Fprintf(m.out, "%d. %s (%s)\n", i+1, c.Name, c.ID.Short())
	}

	choice, err := m.prompt.Int(fmt.Sprintf("%s (1-%d): ", prompt, len(containers)))
	if err != nil && !errors.Is(err, ErrNotNumber) {
		return "", err
	}
	if err != nil || choice < 1 || choice > len(containers) {
		m.failure("Invalid selection.")
		return "", nil
	}

	return containers[choice-1].ID, nil
}
