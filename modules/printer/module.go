// Package printer provides a lazily built key/value report printer.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/lazymodgo/internal/registry"
	"github.com/vk/lazymodgo/internal/settings"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Printer writes sorted key/value report lines.
type Printer struct {
	out    io.Writer
	indent string
}

// NewPrinter creates a Printer writing to the given writer.
func NewPrinter(out io.Writer, indent int) *Printer {
	return &Printer{out: out, indent: strings.Repeat(" ", indent)}
}

// Print writes one line per key, sorted for consistent output.
func (p *Printer) Print(values map[string]string) {
	if values == nil {
		fmt.Fprintf(p.out, "%s(null)\n", p.indent)
		return
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(p.out, "%s%s = %q\n", p.indent, k, values[k])
	}
}

// build is the factory for the 'printer' target.
func build(ctx context.Context, s map[string]cty.Value) (any, error) {
	indent, err := settings.Int(s, "indent", 2)
	if err != nil {
		return nil, err
	}
	if indent < 0 {
		return nil, fmt.Errorf("setting \"indent\" must not be negative")
	}
	return NewPrinter(os.Stdout, indent), nil
}

// Register registers the factory with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFactory("printer", &registry.RegisteredFactory{
		Build: build,
	})
}
