package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/lazymodgo/internal/app"
	"github.com/vk/lazymodgo/internal/loader"
	"github.com/vk/lazymodgo/internal/testutil"
)

func TestApp_WarmUpLoadsAllModules(t *testing.T) {
	t.Parallel()

	// Arrange
	manifestDir := testutil.WriteManifests(t, map[string]string{
		"modules.hcl": `
module "alpha" {
  target = "static_a"
}

module "beta" {
  target = "static_b"
}
`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir, WarmUp: true})
	require.NoError(t, err)

	testApp, _ := app.SetupAppTest(t, cfg,
		&testutil.StaticModule{Target: "static_a", Value: "a"},
		&testutil.StaticModule{Target: "static_b", Value: "b"},
	)

	// Act
	err = testApp.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, testApp.Loader().LoadedModules())
}

func TestApp_WithoutWarmUp_NothingIsLoaded(t *testing.T) {
	t.Parallel()

	// Arrange
	manifestDir := testutil.WriteManifests(t, map[string]string{
		"modules.hcl": `
module "alpha" {
  target = "static_a"
}
`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir})
	require.NoError(t, err)

	testApp, _ := app.SetupAppTest(t, cfg,
		&testutil.StaticModule{Target: "static_a", Value: "a"},
	)

	// Act
	err = testApp.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, testApp.Loader().LoadedModules())

	// A module only loads once something actually asks for it.
	handle, err := testApp.Loader().Get("alpha")
	require.NoError(t, err)
	value, err := handle.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", value)
	assert.Equal(t, []string{"alpha"}, testApp.Loader().LoadedModules())
}

func TestApp_WarmUpReportsEveryFailure(t *testing.T) {
	t.Parallel()

	// Arrange: "beta" refers to a target no compiled-in module provides.
	manifestDir := testutil.WriteManifests(t, map[string]string{
		"modules.hcl": `
module "alpha" {
  target = "static_a"
}

module "beta" {
  target = "missing_lib"
}
`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir, WarmUp: true})
	require.NoError(t, err)

	testApp, logBuffer := app.SetupAppTest(t, cfg,
		&testutil.StaticModule{Target: "static_a", Value: "a"},
	)

	// Act
	err = testApp.Run(context.Background())

	// Assert
	require.Error(t, err)
	var aggErr *loader.WarmupError
	require.ErrorAs(t, err, &aggErr)
	require.Len(t, aggErr.Failures, 1)
	assert.Equal(t, "beta", aggErr.Failures[0].Name)

	// The healthy module still loaded.
	assert.Equal(t, []string{"alpha"}, testApp.Loader().LoadedModules())
	assert.Contains(t, logBuffer.String(), "Warm-up failure.")
}

func TestApp_VersionsArePrinted(t *testing.T) {
	t.Parallel()

	// Arrange
	manifestDir := testutil.WriteManifests(t, map[string]string{
		"modules.hcl": `
module "alpha" {
  target = "static_a"
}
`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir, Versions: true})
	require.NoError(t, err)

	testApp, logBuffer := app.SetupAppTest(t, cfg,
		&testutil.StaticModule{Target: "static_a", Value: "a", Version: "1.2.3"},
	)

	// Act
	err = testApp.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, logBuffer.String(), `alpha = "1.2.3"`)
}

func TestNewApp_PanicsOnMalformedManifest(t *testing.T) {
	t.Parallel()

	manifestDir := testutil.WriteManifests(t, map[string]string{
		"broken.hcl": `module "alpha" {`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir})
	require.NoError(t, err)

	assert.Panics(t, func() {
		app.SetupAppTest(t, cfg, &testutil.NoOpModule{})
	})
}

func TestNewApp_PanicsOnEmptyTarget(t *testing.T) {
	t.Parallel()

	manifestDir := testutil.WriteManifests(t, map[string]string{
		"modules.hcl": `
module "alpha" {
  target = ""
}
`,
	})
	cfg, err := app.NewConfig(app.Config{ManifestPath: manifestDir})
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		panicErr, ok := r.(error)
		require.True(t, ok)
		assert.True(t, strings.Contains(panicErr.Error(), "alpha"))
	}()
	app.SetupAppTest(t, cfg, &testutil.NoOpModule{})
}

func TestNewConfig_RequiresManifestPath(t *testing.T) {
	t.Parallel()

	_, err := app.NewConfig(app.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ManifestPath")
}
