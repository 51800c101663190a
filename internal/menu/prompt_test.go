package menu

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Tokens(t *testing.T) {
	out := new(bytes.Buffer)
	p := NewPrompter(strings.NewReader("  alpine\r\n8080:80 2222:22\n\n last"), out)

	for _, want := range []string{"alpine", "8080:80", "2222:22", "last"} {
		got, err := p.String("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.String("> ")
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, strings.Repeat("> ", 5), out.String())
}

func TestPrompter_Int(t *testing.T) {
	p := NewPrompter(strings.NewReader("12 x -3"), io.Discard)

	n, err := p.Int("")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = p.Int("")
	assert.True(t, errors.Is(err, ErrNotNumber))

	n, err = p.Int("")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = p.Int("")
	assert.True(t, errors.Is(err, io.EOF))
}

func TestPrompter_SecretFallsBackWithoutTerminal(t *testing.T) {
	out := new(bytes.Buffer)
	p := NewPrompter(strings.NewReader("hunter2\n"), out)

	got, err := p.Secret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.Equal(t, "Password: ", out.String())
}
