package commands_test

import (
	"bytes"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/winpath/cmd/winpath/commands"
)

var testDataDir string

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	testDataDir = filepath.Join(dir, "testdata")
}

// execute runs the root command with the empty test config, so that no
// config file of the host is picked up.
func execute(stdin io.Reader, args ...string) (string, string, error) {
	tc := commands.NewRootCmd("test", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(append([]string{"--config", filepath.Join(testDataDir, "empty.toml")}, args...))
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	if stdin != nil {
		tc.SetIn(stdin)
	}

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCmdArgs(t *testing.T) {
	tcs := map[string]struct {
		wantErr error
		args    []string
	}{
		"default config": {
			args: []string{"version"},
		},
		"json format": {
			args: []string{"--log_level", "info", "--log_format", "json", "version"},
		},
		"logfmt format": {
			args: []string{"--log_level", "debug", "--log_format", "logfmt", "version"},
		},
		"forward separator": {
			args: []string{"--separator", "/", "version"},
		},
		"invalid log level": {
			args:    []string{"--log_level", "invalid", "version"},
			wantErr: commands.ErrLogHandlerFailed,
		},
		"invalid log format": {
			args:    []string{"--log_format", "invalid", "version"},
			wantErr: commands.ErrLogHandlerFailed,
		},
		"invalid separator": {
			args:    []string{"--separator", "|", "version"},
			wantErr: commands.ErrInvalidArgument,
		},
		"invalid output": {
			args:    []string{"--output", "xml", "version"},
			wantErr: commands.ErrInvalidOutput,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			stdout, _, err := execute(nil, tc.args...)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
			}
		})
	}
}

func TestRootCmdConfigFile(t *testing.T) {
	tc := commands.NewRootCmd("test_config", "", "")
	stdout := &bytes.Buffer{}

	tc.SetArgs([]string{"--config", filepath.Join(testDataDir, "slash.toml"), "clean", `C:\foo\\bar`})
	tc.SetOut(stdout)
	tc.SetErr(io.Discard)

	require.NoError(t, tc.Execute())
	assert.Equal(t, "C:/foo/bar\n", stdout.String())

	tc = commands.NewRootCmd("test_config", "", "")
	stdout.Reset()

	tc.SetArgs([]string{"--config", filepath.Join(testDataDir, "slash.toml"), "--separator", `\`, "clean", `C:/foo`})
	tc.SetOut(stdout)
	tc.SetErr(io.Discard)

	require.NoError(t, tc.Execute())
	assert.Equal(t, `C:\foo`+"\n", stdout.String(), "flags override the config file")
}

func TestRootCmdLogsConfigSource(t *testing.T) {
	_, stderr, err := execute(nil, "--log_level", "debug", "--log_format", "logfmt", "version")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ready to go")
	assert.Contains(t, stderr, filepath.Join("testdata", "empty.toml"))

	_, stderr, err = execute(nil, "--log_level", "info", "version")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "empty.toml")
}

func TestRootCmdInvalidConfig(t *testing.T) {
	tc := commands.NewRootCmd("test_config", "", "")
	tc.SetArgs([]string{"--config", filepath.Join(testDataDir, "invalid.toml"), "version"})
	tc.SetOut(io.Discard)
	tc.SetErr(io.Discard)

	err := tc.Execute()
	require.ErrorIs(t, err, commands.ErrConfigFailed)
	assert.True(t, strings.Contains(err.Error(), "separator"), err.Error())
	assert.True(t, strings.Contains(err.Error(), "drive"), err.Error())
}

func TestRootCmdArgPointers(t *testing.T) {
	args := commands.NewRootArgs()

	assert.Empty(t, args.GetLogLevel())
	assert.Empty(t, args.GetLogFormat())
	assert.Empty(t, args.GetConfigPath())
	assert.Equal(t, byte('\\'), args.Paths().Separator())
	assert.NotNil(t, args.Registry())
}
