package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// ErrNotNumber is returned by Prompter.Int when the token is not an integer.
var ErrNotNumber = errors.New("not a number")

// Prompter writes prompts and reads whitespace-delimited answers.
// Reading stops at end of input with io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal descriptor used for hidden input, or -1
	fd int
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Prompter{in: bufio.NewReader(in), out: out, fd: fd}
}

// String prints prompt and returns the next token.
func (p *Prompter) String(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.token()
}

// Int prints prompt and parses the next token as an integer.
// A non-numeric token is consumed and reported as ErrNotNumber.
func (p *Prompter) Int(prompt string) (int, error) {
	tok, err := p.String(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumber, tok)
	}
	return n, nil
}

// Secret prints prompt and reads a value without echo when input is a
// terminal with nothing typed ahead; otherwise it behaves like String.
func (p *Prompter) Secret(prompt string) (string, error) {
	if p.fd < 0 || p.in.Buffered() > 0 || !term.IsTerminal(p.fd) {
		return p.String(prompt)
	}
	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// token skips leading whitespace and reads up to the next whitespace.
// A line terminator directly after the token is consumed with it.
func (p *Prompter) token() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			if r == '\r' {
				if next, _, err := p.in.ReadRune(); err == nil && next != '\n' {
					_ = p.in.UnreadRune()
				}
			}
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}
