package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/birthday-ics/internal/config"
)

// clearEnv removes the configuration variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvProductID, config.EnvInFile, config.EnvOutFile, config.EnvMode, config.EnvDebug} {
		t.Setenv(key, "") // registers restoration of the original value
		require.NoError(t, os.Unsetenv(key))
	}
}

func writePeople(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte("people:\n  - name: Ada\n    birthday: 1990-03-15\n"), 0o600))
	return path
}

func TestRunMain_MissingConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "out.ics")

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "--product-id", "p", "--out-file", out}, &stderr)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, stderr.String(), "configuration error")
	assert.Contains(t, stderr.String(), config.FlagInFile)
	assert.NoFileExists(t, out)
}

func TestRunMain_FlagsSuccess(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writePeople(t, dir)
	out := filepath.Join(dir, "out.ics")

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "-p", "-//Test//EN", "-i", in, "-o", out}, &stderr)

	require.Equal(t, config.ExitCodeSuccess, code, stderr.String())
	assert.Empty(t, stderr.String(), "A successful run is silent")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PRODID:-//Test//EN")
	assert.Contains(t, string(data), "Birthday")
}

func TestRunMain_EnvironmentFallbackAndFlagPrecedence(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writePeople(t, dir)
	out := filepath.Join(dir, "out.ics")

	t.Setenv(config.EnvProductID, "-//Env//EN")
	t.Setenv(config.EnvInFile, in)
	t.Setenv(config.EnvOutFile, filepath.Join(dir, "ignored.ics"))
	t.Setenv(config.EnvMode, config.ModeExpanding)

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "--out-file", out, "--mode", config.ModeSimple}, &stderr)
	require.Equal(t, config.ExitCodeSuccess, code, stderr.String())

	assert.NoFileExists(t, filepath.Join(dir, "ignored.ics"), "Flag wins over environment")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	icsStr := string(data)
	assert.Contains(t, icsStr, "PRODID:-//Env//EN")
	assert.Equal(t, 1, strings.Count(icsStr, "BEGIN:VEVENT"), "Simple mode from the flag")
	assert.Contains(t, icsStr, "SUMMARY:Ada's Birthday")
}

func TestRunMain_DotEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writePeople(t, dir)
	out := filepath.Join(dir, "out.ics")

	dotEnv := config.EnvInFile + "=" + in + "\n" + config.EnvProductID + "=-//DotEnv//EN\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DotEnvFile), []byte(dotEnv), 0o600))
	t.Chdir(dir)

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "-o", out}, &stderr)
	require.Equal(t, config.ExitCodeSuccess, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PRODID:-//DotEnv//EN")
}

func TestRunMain_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := writePeople(t, dir)
	out := filepath.Join(dir, "out.ics")

	t.Setenv(config.EnvProductID, "-//Env//EN")
	dotEnv := config.EnvInFile + "=" + in + "\n" + config.EnvProductID + "=-//DotEnv//EN\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DotEnvFile), []byte(dotEnv), 0o600))
	t.Chdir(dir)

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "-o", out}, &stderr)
	require.Equal(t, config.ExitCodeSuccess, code, stderr.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "PRODID:-//Env//EN")
}

func TestRunMain_DecodeError(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(in, []byte("persons: []\n"), 0o600))

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "-p", "p", "-i", in, "-o", filepath.Join(dir, "out.ics")}, &stderr)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, stderr.String(), "decode error")
}

func TestRunMain_UnknownMode(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	var stderr bytes.Buffer
	code := runMain([]string{config.AppName, "-p", "p", "-i", writePeople(t, dir), "-o", filepath.Join(dir, "o.ics"), "-m", "weekly"}, &stderr)

	assert.Equal(t, config.ExitCodeError, code)
	assert.Contains(t, stderr.String(), config.ErrModeUnsupport)
}
