package commands_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/macropower/winpath/pkg/config"
)

func TestConfigShowCmd(t *testing.T) {
	stdout, _, err := execute(nil, "--separator", "/", "--log_level", "error", "config", "show")
	require.NoError(t, err)

	got := &config.Config{}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), got))

	want := config.Default()
	want.Separator = "/"
	want.Log.Level = "error"
	assert.Equal(t, want, got)
}

func TestConfigSchemaCmd(t *testing.T) {
	stdout, _, err := execute(nil, "config", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"separator"`)
}
