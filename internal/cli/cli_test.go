package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	config, shouldExit, err := Parse(nil, &out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "Kconfig", config.KconfigPath)
	assert.Equal(t, ".config", config.OutputPath)
	assert.Empty(t, config.Select)
	assert.False(t, config.NoDefaults)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	config, _, err := Parse([]string{"-o", "out.cfg", "-s", "A,B", "-d", "tree/Kconfig"}, &out)

	require.NoError(t, err)
	assert.Equal(t, "tree/Kconfig", config.KconfigPath)
	assert.Equal(t, "out.cfg", config.OutputPath)
	assert.Equal(t, []string{"A", "B"}, config.Select)
	assert.True(t, config.NoDefaults)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, shouldExit, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, _, err := Parse([]string{"--not-a-flag"}, &out)

	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogSettings(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, _, err := Parse([]string{"--log-format", "xml"}, &out)
	require.Error(t, err)

	_, _, err = Parse([]string{"--log-level", "loud"}, &out)
	require.Error(t, err)
}

func TestParse_SelectFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "names")
	require.NoError(t, os.WriteFile(path, []byte("A\nB;C\n"), 0600))

	var out bytes.Buffer
	config, _, err := Parse([]string{"-s", "Z", "-S", path}, &out)

	require.NoError(t, err)
	assert.Equal(t, []string{"Z", "A", "B", "C"}, config.Select)
}

func TestParse_ProfileMerge(t *testing.T) {
	t.Parallel()

	profile := filepath.Join(t.TempDir(), "ci.hcl")
	require.NoError(t, os.WriteFile(profile, []byte(`
select   = ["NET"]
defaults = false
output   = "profile.cfg"
`), 0600))

	t.Run("profile fills unset options", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		config, _, err := Parse([]string{"--profile", profile}, &out)

		require.NoError(t, err)
		assert.Equal(t, []string{"NET"}, config.Select)
		assert.Equal(t, "profile.cfg", config.OutputPath)
		assert.True(t, config.NoDefaults)
	})

	t.Run("explicit flags win over the profile", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		config, _, err := Parse([]string{"--profile", profile, "-o", "cli.cfg", "-s", "USB"}, &out)

		require.NoError(t, err)
		assert.Equal(t, "cli.cfg", config.OutputPath)
		assert.Equal(t, []string{"NET", "USB"}, config.Select, "profile selections merge with CLI ones")
	})

	t.Run("missing profile is an error", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer
		_, _, err := Parse([]string{"--profile", filepath.Join(t.TempDir(), "nope.hcl")}, &out)
		require.Error(t, err)
	})
}
