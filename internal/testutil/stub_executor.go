package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StubExecutor records runtime invocations and replays canned capture output.
// Run calls succeed unless an error was stubbed for the joined argument list.
type StubExecutor struct {
	mu       sync.Mutex
	captures map[string][]stubResponse
	runErrs  map[string]error
	calls    []Call
}

// Call is one recorded invocation.
type Call struct {
	Mode string // "run" or "capture"
	Args []string
}

type stubResponse struct {
	lines []string
	err   error
}

func NewStubExecutor() *StubExecutor {
	return &StubExecutor{
		captures: make(map[string][]stubResponse),
		runErrs:  make(map[string]error),
	}
}

// StubCapture queues output for a Capture call whose arguments join to args.
// out is split on newlines the way a pipe reader would split it.
func (s *StubExecutor) StubCapture(args string, out string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var lines []string
	if out != "" {
		lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	}
	s.captures[args] = append(s.captures[args], stubResponse{lines: lines, err: err})
}

// StubRun makes every Run call whose arguments join to args return err.
func (s *StubExecutor) StubRun(args string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runErrs[args] = err
}

func (s *StubExecutor) Run(ctx context.Context, args ...string) error {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Mode: "run", Args: append([]string(nil), args...)})
	return s.runErrs[key]
}

func (s *StubExecutor) Capture(ctx context.Context, args ...string) ([]string, error) {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Mode: "capture", Args: append([]string(nil), args...)})
	queue := s.captures[key]
	if len(queue) == 0 {
		return nil, fmt.Errorf("unexpected capture call: %s", key)
	}
	resp := queue[0]
	s.captures[key] = queue[1:]
	return resp.lines, resp.err
}

// Calls returns every recorded invocation in order.
func (s *StubExecutor) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// RunCalls returns the arguments of each Run invocation in order.
func (s *StubExecutor) RunCalls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out [][]string
	for _, c := range s.calls {
		if c.Mode == "run" {
			out = append(out, c.Args)
		}
	}
	return out
}

// CallsFor counts invocations of either mode whose arguments join to args.
func (s *StubExecutor) CallsFor(args ...string) int {
	key := strings.Join(args, " ")
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, call := range s.calls {
		if strings.Join(call.Args, " ") == key {
			count++
		}
	}
	return count
}
