// Package menu implements the numbered interactive front end: the main
// menu loop, container selection by ordinal, and one handler per action.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/RevCBH/tuxdock/internal/config"
	"github.com/RevCBH/tuxdock/internal/container"
)

// Options configures a Menu.
type Options struct {
	In     io.Reader
	Out    io.Writer
	Logger logrus.FieldLogger

	// Database holds the image, container name and password variable
	// used by the database action
	Database config.DatabaseConfig
}

// Menu is the interactive front end. It keeps no state between actions.
type Menu struct {
	mgr    container.Manager
	prompt *Prompter
	out    io.Writer
	styles Styles
	logger logrus.FieldLogger
	db     config.DatabaseConfig

	entries []entry
}

// entry is one numbered menu line; numbers are 1-based positions.
type entry struct {
	label  string
	action func(context.Context) error
}

const title = "Tux-Dock: Container Management Menu"

var rule = strings.Repeat("-", 34)

// New creates a Menu that dispatches actions to mgr.
func New(mgr container.Manager, opts Options) *Menu {
	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	m := &Menu{
		mgr:    mgr,
		prompt: NewPrompter(opts.In, opts.Out),
		out:    opts.Out,
		styles: DefaultStyles(opts.Out),
		logger: logger,
		db:     opts.Database,
	}
	m.entries = []entry{
		{"Pull Image", m.pullImage},
		{"Run/Create Interactive Container", m.runInteractive},
		{"List All Containers", m.listContainers},
		{"List All Images", m.listImages},
		{"Start Container Interactively (boot new session)", m.startInteractive},
		{"Start Detached Container Session", m.startDetached},
		{"Delete Image", m.deleteImage},
		{"Stop Container", m.stopContainer},
		{"Remove Container", m.removeContainer},
		{"Attach Shell to Running Container", m.execShell},
		{"Spin Up MySQL Container", m.spinUpDatabase},
		{"Get Container IP Address", m.showIP},
	}
	return m
}

// exitOption is the number shown for "Exit".
func (m *Menu) exitOption() int {
	return len(m.entries) + 1
}

// Run shows the menu until the operator chooses Exit or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.render()

		choice, err := m.prompt.Int("Choose an option: ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(m.out)
			return nil
		case errors.Is(err, ErrNotNumber):
			m.failure("Invalid option.")
			continue
		case err != nil:
			return fmt.Errorf("read menu choice: %w", err)
		}

		if choice == m.exitOption() {
			fmt.Fprintln(m.out, "Exiting Tux-Dock.")
			return nil
		}
		if choice < 1 || choice > len(m.entries) {
			m.failure("Invalid option.")
			continue
		}

		e := m.entries[choice-1]
		m.logger.WithField("action", e.label).Debug("dispatching")
		if err := e.action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out)
				return nil
			}
			m.logger.WithError(err).WithField("action", e.label).Debug("action failed")
			m.failure(err.Error())
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, m.styles.Title.Render(title))
	fmt.Fprintln(m.out, m.styles.Rule.Render(rule))
	for i, e := range m.entries {
		m.renderLine(i+1, e.label)
	}
	m.renderLine(m.exitOption(), "Exit")
	fmt.Fprintln(m.out, m.styles.Rule.Render(rule))
}

func (m *Menu) renderLine(n int, label string) {
	num := fmt.Sprintf("%d.", n)
	pad := strings.Repeat(" ", max(1, 4-len(num)))
	fmt.Fprintf(m.out, "%s%s%s\n", m.styles.Number.Render(num), pad, label)
}

// report renders a runtime invocation error. Non-zero exits are warnings:
// the runtime has already printed its own explanation.
func (m *Menu) report(err error) {
	if err == nil {
		return
	}
	var exitErr *container.ExitError
	if errors.As(err, &exitErr) {
		m.warning(err.Error())
		return
	}
	m.failure(err.Error())
}

func (m *Menu) info(msg string) {
	fmt.Fprintln(m.out, m.styles.Info.Render(msg))
}

func (m *Menu) warning(msg string) {
	fmt.Fprintln(m.out, m.styles.Warning.Render(msg))
}

func (m *Menu) failure(msg string) {
	fmt.Fprintln(m.out, m.styles.Failure.Render(msg))
}
