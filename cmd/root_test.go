package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nulzo/factory-method/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultDemo(t *testing.T) {
	stdout, _, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, "App: Launched with the ConcreteCreator1.\n"+
		"Client: I'm not aware of the creator's class,but it still works.\n"+
		"Creator: The same creator's code has just worked with {Result of ConcreteProduct1}\n"+
		"\n"+
		"App: Launched with the ConcreteCreator2.\n"+
		"Client: I'm not aware of the creator's class,but it still works.\n"+
		"Creator: The same creator's code has just worked with {Result of ConcreteProduct2}\n", stdout)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("launch:\n  - ConcreteCreator2\n"), 0o600))

	stdout, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "App: Launched with the ConcreteCreator2.\n"+
		"Client: I'm not aware of the creator's class,but it still works.\n"+
		"Creator: The same creator's code has just worked with {Result of ConcreteProduct2}\n", stdout)
}

func TestRoot_UnknownCreator(t *testing.T) {
	t.Setenv("LAUNCH", "ConcreteCreator3")

	stdout, _, err := execute(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCreatorNotFound)
	assert.Equal(t, domain.ExitUsage, domain.ExitCode(err))
	assert.Empty(t, stdout)
}

func TestRoot_TracingExportsToStderr(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	t.Setenv("TRACING_ENABLED", "true")

	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	assert.NotContains(t, stdout, "app.launch")
	assert.Contains(t, stderr, `"Name": "app.launch"`)
	assert.Contains(t, stderr, `"service.version"`)
	assert.Contains(t, stderr, `"1.0.0"`)
}

func TestRoot_UpperCaseLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "JSON")

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "App: Launched with the ConcreteCreator1.\n")
	assert.Contains(t, stdout, "App: Launched with the ConcreteCreator2.\n")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestCreatorsCommand(t *testing.T) {
	stdout, _, err := execute(t, "creators")
	require.NoError(t, err)
	assert.Equal(t, "ConcreteCreator1\nConcreteCreator2\n", stdout)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "factory-method 1.0.0\n", stdout)
}

func TestVersion_Invalid(t *testing.T) {
	prev := AppVersion
	t.Cleanup(func() { AppVersion = prev })
	AppVersion = "not-a-version"

	_, err := Version()
	assert.Error(t, err)
}
