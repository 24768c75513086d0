package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestPrintSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 0)

	p.Print(map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, "a = \"1\"\nb = \"2\"\nc = \"3\"\n", buf.String())
}

func TestPrintNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 2)

	p.Print(nil)
	assert.Equal(t, "  (null)\n", buf.String())
}

func TestBuildRejectsNegativeIndent(t *testing.T) {
	_, err := build(context.Background(), map[string]cty.Value{
		"indent": cty.NumberIntVal(-1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent")
}
