package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/config"
)

func buildFunc(v any) BuildFunc {
	return func(ctx context.Context, settings map[string]cty.Value) (any, error) {
		return v, nil
	}
}

func TestRegisterFactory(t *testing.T) {
	r := New()
	r.RegisterFactory("httpclient", &RegisteredFactory{Build: buildFunc(1)})

	f, ok := r.Factory("httpclient")
	require.True(t, ok)
	assert.NotNil(t, f.Build)

	_, ok = r.Factory("missing")
	assert.False(t, ok)
}

func TestRegisterFactoryDuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterFactory("httpclient", &RegisteredFactory{Build: buildFunc(1)})

	assert.Panics(t, func() {
		r.RegisterFactory("httpclient", &RegisteredFactory{Build: buildFunc(2)})
	})
}

func TestRegisterFactoryWithoutBuildPanics(t *testing.T) {
	r := New()
	assert.Panics(t, func() {
		r.RegisterFactory("broken", &RegisteredFactory{})
	})
}

func TestPopulateAndLookup(t *testing.T) {
	r := New()
	model := config.NewModel()
	model.Modules["alpha"] = &config.ModuleDefinition{Name: "alpha", Target: "alpha_lib"}
	model.Modules["beta"] = &config.ModuleDefinition{Name: "beta", Target: "beta_lib"}
	r.PopulateDefinitionsFromModel(model)

	def, ok := r.Lookup("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha_lib", def.Target)

	_, ok = r.Lookup("omega")
	assert.False(t, ok)

	assert.Equal(t, []string{"alpha", "beta"}, r.Names())
	assert.Equal(t, 2, r.Count())
}

func TestVersionHook(t *testing.T) {
	r := New()
	r.RegisterFactory("versioned", &RegisteredFactory{
		Build:   buildFunc(1),
		Version: func(module any) string { return "v9" },
	})
	r.RegisterFactory("plain", &RegisteredFactory{Build: buildFunc(2)})

	v, ok := r.Version("versioned", 1)
	require.True(t, ok)
	assert.Equal(t, "v9", v)

	_, ok = r.Version("plain", 2)
	assert.False(t, ok)
	_, ok = r.Version("missing", nil)
	assert.False(t, ok)
}

func TestValidateRegistry(t *testing.T) {
	t.Run("passes with matching factory", func(t *testing.T) {
		r := New()
		r.RegisterFactory("alpha_lib", &RegisteredFactory{Build: buildFunc(1)})
		model := config.NewModel()
		model.Modules["alpha"] = &config.ModuleDefinition{Name: "alpha", Target: "alpha_lib"}
		r.PopulateDefinitionsFromModel(model)

		assert.NoError(t, r.ValidateRegistry(context.Background()))
	})

	t.Run("missing factory is not fatal", func(t *testing.T) {
		// An absent target surfaces at first use, not at startup.
		r := New()
		model := config.NewModel()
		model.Modules["alpha"] = &config.ModuleDefinition{Name: "alpha", Target: "alpha_lib"}
		r.PopulateDefinitionsFromModel(model)

		assert.NoError(t, r.ValidateRegistry(context.Background()))
	})

	t.Run("empty target is an error", func(t *testing.T) {
		r := New()
		model := config.NewModel()
		model.Modules["alpha"] = &config.ModuleDefinition{Name: "alpha", Target: ""}
		r.PopulateDefinitionsFromModel(model)

		err := r.ValidateRegistry(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "alpha")
	})
}
