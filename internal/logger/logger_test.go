package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	l := NewWithWriter(buf, 4, nil)

	l.Info("hidden")
	l.Warn("shown", "key", "value")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
	assert.NoError(t, l.Close())
}

func TestNew_WritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "staffhub.log")
	l := New(0, file)

	l.Info("written to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
