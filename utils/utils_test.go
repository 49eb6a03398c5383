package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards_played: [K♠]\n"), 0o600))

	data, err := ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "cards_played: [K♠]\n", string(data))
}

func TestReadInputStdin(t *testing.T) {
	data, err := ReadInput(StdinPath, strings.NewReader("jokers: []"))
	require.NoError(t, err)
	assert.Equal(t, "jokers: []", string(data))
}

func TestReadInputErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := ReadInput(missing, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)

	boom := errors.New("boom")
	_, err = ReadInput(StdinPath, iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}
