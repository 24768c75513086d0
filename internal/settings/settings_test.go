package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestString(t *testing.T) {
	m := map[string]cty.Value{"url": cty.StringVal("https://example.com")}

	got, err := String(m, "url", "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	got, err = String(m, "missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = String(map[string]cty.Value{"url": cty.NumberIntVal(5)}, "url", "")
	assert.Error(t, err)
}

func TestRequiredString(t *testing.T) {
	_, err := RequiredString(map[string]cty.Value{}, "url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url")

	got, err := RequiredString(map[string]cty.Value{"url": cty.StringVal("x")}, "url")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestBool(t *testing.T) {
	m := map[string]cty.Value{"insecure": cty.BoolVal(true)}

	got, err := Bool(m, "insecure", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Bool(m, "missing", true)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestInt(t *testing.T) {
	m := map[string]cty.Value{"retries": cty.NumberIntVal(3)}

	got, err := Int(m, "retries", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = Int(m, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestDuration(t *testing.T) {
	m := map[string]cty.Value{"timeout": cty.StringVal("1500ms")}

	got, err := Duration(m, "timeout", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, got)

	got, err = Duration(m, "missing", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, got)

	_, err = Duration(map[string]cty.Value{"timeout": cty.StringVal("soon")}, "timeout", 0)
	assert.Error(t, err)
}
