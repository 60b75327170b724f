package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/genmodule/internal/errors"
)

// stubDesktop replaces DesktopDir for the duration of the test.
func stubDesktop(t *testing.T, dir string) {
	t.Helper()
	orig := DesktopDir
	DesktopDir = func() string { return dir }
	t.Cleanup(func() { DesktopDir = orig })
}

func TestResolveOutputDir_FlagPrecedence(t *testing.T) {
	stubDesktop(t, "/home/user/Desktop")
	t.Setenv(EnvOutputDir, "/env/out")

	result, err := ResolveOutputDir(ResolveOutputDirOptions{
		FlagValue:   "/flag/out",
		ConfigValue: "/config/out",
	})

	require.NoError(t, err)
	assert.Equal(t, "/flag/out", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/out", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config/out", result.Shadowed[SourceConfig])
}

func TestResolveOutputDir_EnvPrecedence(t *testing.T) {
	stubDesktop(t, "/home/user/Desktop")
	t.Setenv(EnvOutputDir, "/env/out")

	result, err := ResolveOutputDir(ResolveOutputDirOptions{ConfigValue: "/config/out"})

	require.NoError(t, err)
	assert.Equal(t, "/env/out", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config/out", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveOutputDir_ConfigFallback(t *testing.T) {
	stubDesktop(t, "/home/user/Desktop")
	t.Setenv(EnvOutputDir, "")

	result, err := ResolveOutputDir(ResolveOutputDirOptions{ConfigValue: "/config/out"})

	require.NoError(t, err)
	assert.Equal(t, "/config/out", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveOutputDir_DesktopDefault(t *testing.T) {
	stubDesktop(t, "/home/user/Desktop")
	t.Setenv(EnvOutputDir, "")

	result, err := ResolveOutputDir(ResolveOutputDirOptions{})

	require.NoError(t, err)
	assert.Equal(t, "/home/user/Desktop", result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Equal(t, "outputDir", result.Key)
}

func TestResolveOutputDir_ExpandsTilde(t *testing.T) {
	stubDesktop(t, "")
	t.Setenv(EnvOutputDir, "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	result, err := ResolveOutputDir(ResolveOutputDirOptions{ConfigValue: "~/Modules"})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, "Modules"), result.Value)
}

func TestResolveOutputDir_Unresolvable(t *testing.T) {
	stubDesktop(t, "")
	t.Setenv(EnvOutputDir, "")

	_, err := ResolveOutputDir(ResolveOutputDirOptions{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "output directory not found")
	assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
}

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/flag/config.yaml"})

	require.NoError(t, err)
	assert.Equal(t, "/flag/config.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
	assert.Contains(t, result.Shadowed, SourceDefault)
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})

	require.NoError(t, err)
	assert.Equal(t, "/env/config.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")
	paths, err := DefaultPaths()
	require.NoError(t, err)

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})

	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}
