package hcl_adapter_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/hcl_adapter"
	"github.com/vk/lazymodgo/internal/testutil"
)

func TestLoadSingleModule(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"socketio.hcl": `
module "socketio" {
  target      = "socketio"
  description = "Connected socket.io client"

  settings {
    url       = "wss://example.com/socket.io"
    namespace = "/"
    insecure  = true
    retries   = 3
  }
}
`,
	})

	model, err := hcl_adapter.NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Modules, 1)

	def := model.Modules["socketio"]
	require.NotNil(t, def)
	assert.Equal(t, "socketio", def.Name)
	assert.Equal(t, "socketio", def.Target)
	assert.Equal(t, "Connected socket.io client", def.Description)
	assert.True(t, cty.StringVal("wss://example.com/socket.io").RawEquals(def.Settings["url"]))
	assert.True(t, cty.StringVal("/").RawEquals(def.Settings["namespace"]))
	assert.True(t, cty.True.RawEquals(def.Settings["insecure"]))
	assert.True(t, cty.NumberIntVal(3).RawEquals(def.Settings["retries"]))
}

func TestLoadMergesAcrossFiles(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"a/alpha.hcl": `
module "alpha" {
  target = "alpha_lib"
}
`,
		"b/beta.hcl": `
module "beta" {
  target = "beta_lib"
}
`,
	})

	model, err := hcl_adapter.NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Modules, 2)
	assert.Equal(t, "alpha_lib", model.Modules["alpha"].Target)
	assert.Equal(t, "beta_lib", model.Modules["beta"].Target)
}

func TestLoadSingleFilePath(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"only.hcl": `
module "alpha" {
  target = "alpha_lib"
}
`,
	})

	model, err := hcl_adapter.NewLoader().Load(context.Background(), filepath.Join(dir, "only.hcl"))
	require.NoError(t, err)
	assert.Len(t, model.Modules, 1)
}

func TestLoadMissingPathIsSkipped(t *testing.T) {
	model, err := hcl_adapter.NewLoader().Load(context.Background(), "/does/not/exist")
	require.NoError(t, err)
	assert.Empty(t, model.Modules)
}

func TestLoadRejectsDuplicateName(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"dup.hcl": `
module "alpha" {
  target = "alpha_lib"
}

module "alpha" {
  target = "other_lib"
}
`,
	})

	_, err := hcl_adapter.NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha")
}

func TestLoadRejectsMissingTarget(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"bad.hcl": `
module "alpha" {
}
`,
	})

	_, err := hcl_adapter.NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	dir := testutil.WriteManifests(t, map[string]string{
		"broken.hcl": `module "alpha" {`,
	})

	_, err := hcl_adapter.NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
}
