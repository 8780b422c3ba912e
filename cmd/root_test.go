package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/jex/pkg/document"
)

func TestRegisterFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(fs)

	for _, name := range []string{"debug", "output-cap", "version"} {
		assert.NotNil(t, fs.Lookup(name), "flag %s should be registered", name)
	}
	assert.Equal(t, "d", fs.Lookup("debug").Shorthand)
	assert.Equal(t, "v", fs.Lookup("version").Shorthand)
	assert.Equal(t, "0", fs.Lookup("output-cap").DefValue)
}

func TestLoadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": 1}`), 0o644))

	values, name, err := loadInput([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "sample.json", name)
	require.Len(t, values, 1)
	_, ok := values[0].(*document.Object)
	assert.True(t, ok)
}

func TestLoadInputMissingFile(t *testing.T) {
	_, _, err := loadInput([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestLoadInputMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": `), 0o644))

	_, _, err := loadInput([]string{path})
	assert.Error(t, err)
}

func TestTerminalDeviceNames(t *testing.T) {
	in, out := terminalDeviceNames("linux")
	assert.Equal(t, "/dev/tty", in)
	assert.Equal(t, "/dev/tty", out)

	in, out = terminalDeviceNames("windows")
	assert.Equal(t, "CONIN$", in)
	assert.Equal(t, "CONOUT$", out)
}
